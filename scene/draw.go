// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Drawable is the render state of one sphere or item, handed to
// the renderer each frame.
type Drawable struct {

	// ID is the id of the sphere or item, 0 for the transient edge
	// of an [EdgeDrag].
	ID int64

	Kind Kinds

	// Pos and Quat are the world position and orientation.
	Pos  math32.Vector3
	Quat math32.Quat

	// Radius is the sphere radius or node disc radius.
	Radius float32

	// Points is the polyline of an edge.
	Points []math32.Vector3

	Selected bool
	Texture  string
	Color    color.RGBA
}

// Drawables returns the render state of the sphere followed by its
// items in creation order, and then the transient edge being dragged,
// if any. Edges without points are left out.
func (sp *Sphere) Drawables() []Drawable {
	ds := make([]Drawable, 0, sp.Items.Len()+2)
	ds = append(ds, Drawable{ID: sp.ID, Kind: KindSphere, Pos: sp.Pos, Quat: sp.Quat,
		Radius: sp.Radius, Texture: sp.Texture, Color: sp.Color})
	for _, kv := range sp.Items.Order {
		d := Drawable{ID: kv.Key, Kind: kv.Value.Kind(), Pos: kv.Value.Pos(), Selected: sp.IsSelected(kv.Value), Color: sp.Color}
		switch it := kv.Value.(type) {
		case *Node:
			d.Quat = it.Quat()
			d.Radius = it.DiscRadius()
			d.Texture = it.Type.Texture
		case *Socket:
			d.Quat = it.Quat()
			d.Radius = it.Node.DiscRadius() * sp.Universe.Settings.SocketOuter
			d.Selected = sp.IsSelected(it.Node)
		case *Edge:
			if len(it.Points) == 0 {
				continue
			}
			d.Points = it.Points
			d.Texture = it.Type
		}
		ds = append(ds, d)
	}
	if ed := &sp.EdgeDrag; ed.Active() && len(ed.Points) > 0 {
		ds = append(ds, Drawable{Kind: KindEdge, Pos: ed.End, Points: ed.Points, Texture: DefaultEdgeType, Color: sp.Color})
	}
	return ds
}
