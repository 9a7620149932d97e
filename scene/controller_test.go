// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"testing"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topView returns a sphere at the origin with a camera looking
// straight down at its pole.
func topView(t *testing.T) (*Universe, *Sphere, *Controller) {
	u := NewUniverse()
	sp := u.NewSphere(math32.Vec3(0, 0, 0), 1)
	cam := pick.NewCamera(math32.Vec3(0, 5, 0), math32.Vec3(0, 0, 0), image.Pt(201, 201))
	return u, sp, NewController(sp, cam)
}

func project(t *testing.T, ct *Controller, p math32.Vector3) image.Point {
	t.Helper()
	px, ok := ct.Camera.Project(p)
	require.True(t, ok)
	return px
}

func TestPickItems(t *testing.T) {
	u, sp, ct := topView(t)
	a := sp.AddNode(nil, orient.Identity())
	b := sp.AddNode(nil, aboutZ(1))

	// a ray straight at a node passes through its socket ring
	for _, nd := range []*Node{a, b} {
		ray := math32.Ray{Origin: nd.Pos().MulScalar(3), Dir: nd.Pos().MulScalar(-1)}
		ht, hsp, it, ok := u.Pick(ray)
		require.True(t, ok)
		assert.Equal(t, sp, hsp)
		assert.Equal(t, Item(nd), it)
		assert.Less(t, ht.Point.DistanceTo(nd.Pos()), float32(0.01))
	}

	// the ring around a node is its socket
	ray := ct.Camera.Ray(project(t, ct, math32.Vec3(0.075, 1.01, 0)))
	_, _, it, ok := u.Pick(ray)
	require.True(t, ok)
	assert.Equal(t, Item(a.Socket), it)

	// empty surface is the background sphere
	ray = ct.Camera.Ray(project(t, ct, math32.Vec3(0.5, 0.866, 0.1)))
	ht, hsp, it, ok := u.Pick(ray)
	require.True(t, ok)
	assert.Equal(t, sp, hsp)
	assert.Nil(t, it)
	assert.Equal(t, sp.ID, ht.Item)

	// off the sphere is nothing
	_, _, _, ok = u.Pick(ct.Camera.Ray(image.Pt(0, 0)))
	assert.False(t, ok)
}

func TestDragNode(t *testing.T) {
	u, sp, ct := topView(t)
	a := sp.AddNode(nil, orient.Identity())
	b := sp.AddNode(nil, aboutZ(1))
	ed := sp.CreateEdge(a.Socket, b.Socket)
	stamps := sp.History.Len()
	pts := len(ed.Points)

	ct.Press(Pointer{Pos: image.Pt(100, 100)})
	assert.Equal(t, DraggingItems, ct.State)
	assert.Equal(t, []Item{a}, sp.Selected)
	ct.Move(Pointer{Pos: image.Pt(115, 100)})
	ct.Move(Pointer{Pos: image.Pt(130, 104)})
	created := u.World.Created
	ct.Release(Pointer{Pos: image.Pt(130, 104)})
	assert.Equal(t, Idle, ct.State)

	// the node is under the pointer, and its collision objects
	// were reset once each on release
	want, ok := u.World.IntersectItem(sp.ID, ct.Camera.Ray(image.Pt(130, 104)))
	require.True(t, ok)
	tolAssertEqualVector(t, want, a.Pos(), 2.0e-3)
	assert.Equal(t, created+3, u.World.Created)
	assert.NotEqual(t, pts, len(ed.Points))
	assertBalanced(t, u)

	assert.Equal(t, stamps+1, sp.History.Len())
	assert.Equal(t, "node moved", sp.History.Current().Desc)
	_, _, it, ok := u.Pick(ct.Camera.Ray(image.Pt(130, 104)))
	require.True(t, ok)
	assert.Equal(t, Item(a), it)

	// a click without a move records nothing
	ct.Press(Pointer{Pos: image.Pt(130, 104)})
	ct.Release(Pointer{Pos: image.Pt(130, 104)})
	assert.Equal(t, stamps+1, sp.History.Len())
}

func TestDragNewEdge(t *testing.T) {
	u, sp, ct := topView(t)
	a := sp.AddNode(nil, orient.Identity())
	b := sp.AddNode(nil, aboutZ(0.5))

	ct.Press(Pointer{Pos: project(t, ct, math32.Vec3(0.075, 1.01, 0))})
	require.Equal(t, DraggingNewEdge, ct.State)
	assert.Equal(t, a.Socket, sp.EdgeDrag.Start)
	assert.Empty(t, sp.Selected)

	// over empty surface there is no target
	ct.Move(Pointer{Pos: project(t, ct, math32.Vec3(0.4, 0.917, 0))})
	assert.Nil(t, sp.EdgeDrag.Target)
	assert.NotEmpty(t, sp.EdgeDrag.Points)
	assert.Equal(t, KindEdge, sp.Drawables()[len(sp.Drawables())-1].Kind)

	// over the other node it snaps to its socket
	ct.Move(Pointer{Pos: project(t, ct, b.Pos())})
	assert.Equal(t, b.Socket, sp.EdgeDrag.Target)
	tolAssertEqualVector(t, b.Pos(), sp.EdgeDrag.End, 1.0e-5)

	ct.Release(Pointer{Pos: project(t, ct, b.Pos())})
	assert.False(t, sp.EdgeDrag.Active())
	ed := sp.FindEdge(a.Socket, b.Socket)
	require.NotNil(t, ed)
	assert.Equal(t, "edge created", sp.History.Current().Desc)

	// dragging the same edge again does not duplicate it
	ct.Press(Pointer{Pos: project(t, ct, math32.Vec3(0.075, 1.01, 0))})
	ct.Release(Pointer{Pos: project(t, ct, b.Pos())})
	assert.Len(t, sp.Edges(), 1)

	// releasing over empty space discards it
	ct.Press(Pointer{Pos: project(t, ct, math32.Vec3(0.075, 1.01, 0))})
	ct.Release(Pointer{Pos: project(t, ct, math32.Vec3(0.4, 0.917, 0))})
	assert.Len(t, sp.Edges(), 1)
	assertBalanced(t, u)
}

func TestRubberBand(t *testing.T) {
	u, sp, ct := topView(t)
	u.Settings.RubberBandRes = 64
	a := sp.AddNode(nil, orient.Identity())
	b := sp.AddNode(nil, aboutZ(0.5))
	c := sp.AddNode(nil, aboutZ(-0.5))
	ed := sp.CreateEdge(a.Socket, b.Socket)
	sp.Select(c, events.SelectOne)
	var desel []Item
	sp.OnDeselect(func(it Item) { desel = append(desel, it) })

	pa := project(t, ct, a.Pos())
	pb := project(t, ct, b.Pos())
	start := image.Pt(pa.X+15, pa.Y+20)
	end := image.Pt(pb.X-15, pb.Y-20)

	ct.Press(Pointer{Pos: start})
	require.Equal(t, DraggingRubberBand, ct.State)
	assert.Empty(t, sp.Selected)
	ct.Move(Pointer{Pos: end})
	ct.Release(Pointer{Pos: end})
	assert.Equal(t, Idle, ct.State)

	assert.True(t, sp.IsSelected(a))
	assert.True(t, sp.IsSelected(b))
	assert.True(t, sp.IsSelected(ed))
	assert.False(t, sp.IsSelected(c))
	for _, it := range sp.Selected {
		assert.NotEqual(t, KindSocket, it.Kind())
	}
	assert.Equal(t, []Item{c}, desel)

	// extending keeps the earlier selection
	ct.Press(Pointer{Pos: project(t, ct, c.Pos()), Mode: events.ExtendOne})
	ct.Release(Pointer{Pos: project(t, ct, c.Pos()), Mode: events.ExtendOne})
	assert.True(t, sp.IsSelected(a))
	assert.True(t, sp.IsSelected(c))

	// and toggles an item off
	ct.Press(Pointer{Pos: project(t, ct, c.Pos()), Mode: events.ExtendOne})
	ct.Release(Pointer{Pos: project(t, ct, c.Pos()), Mode: events.ExtendOne})
	assert.False(t, sp.IsSelected(c))

	// a plain click on a selected node collapses the selection to it
	ct.Press(Pointer{Pos: pa})
	ct.Release(Pointer{Pos: pa})
	assert.Equal(t, []Item{a}, sp.Selected)

	// and clicking off the sphere clears it
	ct.Press(Pointer{Pos: image.Pt(0, 0)})
	ct.Release(Pointer{Pos: image.Pt(0, 0)})
	assert.Empty(t, sp.Selected)
}

func TestDragGroup(t *testing.T) {
	u, sp, ct := topView(t)
	a := sp.AddNode(nil, orient.Identity())
	b := sp.AddNode(nil, aboutZ(0.5))
	sp.Select(a, events.SelectOne)
	sp.Select(b, events.ExtendOne)
	d0 := orient.GreatCircleDistance(a.Pos(), b.Pos(), 1)

	ct.Press(Pointer{Pos: project(t, ct, a.Pos())})
	ct.Move(Pointer{Pos: image.Pt(100, 130)})
	ct.Release(Pointer{Pos: image.Pt(100, 130)})

	assert.Len(t, sp.Selected, 2)
	assert.Greater(t, a.Pos().DistanceTo(math32.Vec3(0, 1, 0)), float32(0.1))
	assert.InDelta(t, d0, orient.GreatCircleDistance(a.Pos(), b.Pos(), 1), 1.0e-3)
	assertBalanced(t, u)
}
