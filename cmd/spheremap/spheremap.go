// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spheremap is a command line tool for sphere map
// universe documents.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/clipboard"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
	"cogentcore.org/spheremap/scene"
)

// Config is the configuration information for the spheremap cli.
type Config struct {

	// Input is the universe document to read. An empty input starts
	// from an empty universe, and "-" reads from standard input.
	Input string `posarg:"0" required:"-"`

	// Output is the file to save the resulting universe document to.
	// The demo command writes to standard output if it is empty.
	Output string `flag:"o,output"`

	// Debug turns on debug logging.
	Debug bool

	// Settings are the geometry and behavior settings of the universe.
	Settings scene.Settings

	// Demo configures the demo command.
	Demo DemoConfig `cmd:"demo"`

	// Pick configures the pick command.
	Pick PickConfig `cmd:"pick"`
}

// DemoConfig configures the demo universe.
type DemoConfig struct {

	// Nodes is the number of nodes in the ring around the hub node.
	Nodes int `default:"8"`

	// Radius is the radius of the demo sphere.
	Radius float32 `default:"1"`
}

// PickConfig configures the pick camera and the pointer position.
type PickConfig struct {

	// X and Y are the pointer position in pixels.
	X, Y int

	// Width and Height are the viewport size in pixels.
	Width  int `default:"800"`
	Height int `default:"600"`

	// Distance is how far the camera is from the first sphere,
	// looking down at its pole.
	Distance float32 `default:"5"`
}

func main() {
	opts := cli.DefaultOptions("spheremap", "Spheremap is a command line tool for sphere map universe documents.")
	opts.DefaultFiles = []string{"spheremap.toml"}
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Info, Name: "info", Doc: "Info prints a summary of the universe.", Root: true},
		&cli.Cmd[*Config]{Func: Demo, Name: "demo", Doc: "Demo builds a demo universe."},
		&cli.Cmd[*Config]{Func: Pick, Name: "pick", Doc: "Pick reports what is under a pointer position."},
	)
}

// setup applies the logging level and returns the universe
// read from the input, if any.
func setup(c *Config) (*scene.Universe, error) {
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	u := scene.NewUniverse()
	if c.Settings != (scene.Settings{}) {
		u.Settings = c.Settings
	}
	switch c.Input {
	case "":
	case "-":
		if err := u.Read(os.Stdin); err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
	default:
		if err := u.Open(c.Input); err != nil {
			return nil, err
		}
	}
	slog.Debug("spheremap: universe loaded", "input", c.Input, "spheres", u.Spheres.Len(), "objects", u.World.Len())
	return u, nil
}

// save saves the universe to the output file, if there is one.
func save(c *Config, u *scene.Universe) error {
	if c.Output == "" {
		return nil
	}
	return u.Save(c.Output)
}

// Info prints a summary of the universe.
func Info(c *Config) error {
	u, err := setup(c)
	if err != nil {
		return err
	}
	fmt.Printf("universe %s: %d spheres, %d collision objects\n", u.ID, u.Spheres.Len(), u.World.Len())
	for _, sp := range u.Spheres.Values() {
		fmt.Printf("  sphere %d at %v radius %g: %d nodes, %d edges\n", sp.ID, sp.Pos, sp.Radius, len(sp.Nodes()), len(sp.Edges()))
		types := make(map[string]int)
		for _, nd := range sp.Nodes() {
			types[nd.Type.Name]++
		}
		for _, name := range scene.NodeTypeNames() {
			if n := types[name]; n > 0 {
				fmt.Printf("    %s: %d\n", name, n)
			}
		}
		var length float32
		for _, ed := range sp.Edges() {
			length += ed.Length()
		}
		if len(sp.Edges()) > 0 {
			fmt.Printf("    total edge length: %.4g\n", length)
		}
	}
	return save(c, u)
}

// Demo builds a demo sphere with a hub node at the pole connected to a
// ring of nodes, plus a pasted copy of part of the ring on the far side.
func Demo(c *Config) error {
	u, err := setup(c)
	if err != nil {
		return err
	}
	n := max(c.Demo.Nodes, 2)
	radius := c.Demo.Radius
	if radius <= 0 {
		radius = 1
	}
	sp := u.NewSphere(math32.Vec3(0, 0, 0), radius)
	hub := sp.AddNode(scene.DefaultNodeType, orient.Identity())
	names := scene.NodeTypeNames()
	tilt := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), 1)
	ring := make([]*scene.Node, n)
	for i := range n {
		turn := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 2*math32.Pi*float32(i)/float32(n))
		nt, _ := scene.NodeTypeByName(names[i%len(names)])
		ring[i] = sp.AddNode(nt, turn.Mul(tilt))
		sp.CreateEdge(hub.Socket, ring[i].Socket)
		if i > 0 {
			sp.CreateEdge(ring[i-1].Socket, ring[i].Socket)
		}
	}
	sp.CreateEdge(ring[n-1].Socket, ring[0].Socket)

	sp.Select(ring[0], events.SelectOne)
	sp.Select(ring[1], events.ExtendOne)
	clipboard.PasteAt(sp, clipboard.Copy(sp), sp.Pos.Add(math32.Vec3(0, -radius, 0)))
	slog.Info("spheremap: demo built", "sphere", sp.ID, "nodes", len(sp.Nodes()), "edges", len(sp.Edges()))

	if c.Output == "" {
		return u.Write(os.Stdout)
	}
	return save(c, u)
}

// Pick casts a ray through the pointer position from a camera above
// the first sphere and reports what it hits.
func Pick(c *Config) error {
	u, err := setup(c)
	if err != nil {
		return err
	}
	if u.Spheres.Len() == 0 {
		return fmt.Errorf("pick: there are no spheres in %q", c.Input)
	}
	sp := u.Spheres.ValueByIndex(0)
	pc := c.Pick
	eye := sp.Pos.Add(math32.Vec3(0, sp.Radius+max(pc.Distance, 0.1), 0))
	cam := pick.NewCamera(eye, sp.Pos, image.Pt(pc.Width, pc.Height))
	ht, hsp, it, ok := u.Pick(cam.Ray(image.Pt(pc.X, pc.Y)))
	switch {
	case !ok:
		fmt.Println("nothing")
	case it == nil:
		fmt.Printf("sphere %d at %v\n", hsp.ID, ht.Point)
	default:
		fmt.Printf("%s %d on sphere %d at %v (distance %.4g)\n", it.Kind(), it.PickID(), hsp.ID, ht.Point, ht.Dist)
	}
	return nil
}
