// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
)

// Pointer is a pointer event in screen coordinates.
type Pointer struct {

	// Pos is the pointer position in pixels.
	Pos image.Point

	// Mode is the selection mode from the modifier keys,
	// see [events.SelectModeBits].
	Mode events.SelectModes
}

// EdgeDrag is the transient open-ended edge shown while dragging
// a new edge out of a socket.
type EdgeDrag struct {

	// Start is the socket the edge is dragged from, nil when inactive.
	Start *Socket

	// Target is the socket the edge would connect to if released now.
	Target *Socket

	// End is the current end point of the transient edge.
	End math32.Vector3

	// Points is the polyline of the transient edge.
	Points []math32.Vector3
}

// Active returns whether an edge is being dragged.
func (ed *EdgeDrag) Active() bool {
	return ed.Start != nil
}

// Controller turns pointer events on one sphere into selection
// changes, node drags, new edges and rubber-band selection.
type Controller struct {

	// Sphere is the sphere being controlled.
	Sphere *Sphere

	// Camera turns pointer positions into rays.
	Camera *pick.Camera

	// State is the current drag state.
	State DragStates

	// grab is the offset of the pointer on the sphere surface
	// at the last move, during DraggingItems.
	grab  math32.Quat
	moved bool

	// press is the item pressed on, to collapse a multiple
	// selection when it is clicked without dragging.
	press Item
	band  image.Rectangle
}

// NewController returns a new controller for the given sphere and camera.
func NewController(sp *Sphere, cam *pick.Camera) *Controller {
	return &Controller{Sphere: sp, Camera: cam}
}

// surfacePoint returns where the ray hits the sphere surface itself,
// ignoring any items in front of it.
func (ct *Controller) surfacePoint(ray math32.Ray) (math32.Vector3, bool) {
	return ct.Sphere.Universe.World.IntersectItem(ct.Sphere.ID, ray)
}

// pick returns the item of the controlled sphere under the ray,
// with hit false for a miss or a hit on another sphere.
func (ct *Controller) pick(ray math32.Ray) (pick.Hit, Item, bool) {
	ht, sp, it, ok := ct.Sphere.Universe.Pick(ray)
	if !ok || sp != ct.Sphere {
		return ht, nil, false
	}
	return ht, it, true
}

// Press handles a pointer press.
func (ct *Controller) Press(pe Pointer) {
	sp := ct.Sphere
	ct.State = Idle
	ct.moved = false
	ct.press = nil
	ray := ct.Camera.Ray(pe.Pos)
	_, it, ok := ct.pick(ray)
	if !ok {
		if pe.Mode == events.SelectOne {
			sp.ClearSelection()
		}
		return
	}
	switch x := it.(type) {
	case nil:
		if pe.Mode == events.SelectOne {
			sp.ClearSelection()
		}
		ct.State = DraggingRubberBand
		ct.band = image.Rectangle{Min: pe.Pos, Max: pe.Pos}
	case *Socket:
		ct.State = DraggingNewEdge
		sp.EdgeDrag = EdgeDrag{Start: x}
		ct.updateEdgeDrag(ray)
	default:
		switch {
		case pe.Mode == events.SelectOne && sp.IsSelected(it):
			ct.press = it
		case pe.Mode == events.ExtendOne && sp.IsSelected(it):
			sp.Select(it, events.Unselect)
		default:
			sp.Select(it, pe.Mode)
		}
		if !sp.IsSelected(it) {
			return
		}
		pt, ok := ct.surfacePoint(ray)
		if !ok {
			return
		}
		ct.State = DraggingItems
		ct.grab = orient.PointerToOffset(pt, sp.Pos, sp.Quat, orient.Identity())
		sp.DeferPicks()
	}
}

// Move handles a pointer move.
func (ct *Controller) Move(pe Pointer) {
	ray := ct.Camera.Ray(pe.Pos)
	switch ct.State {
	case DraggingItems:
		ct.dragItems(ray)
	case DraggingNewEdge:
		ct.updateEdgeDrag(ray)
	case DraggingRubberBand:
		ct.band.Max = pe.Pos
	}
}

// Release handles a pointer release, completing the current drag.
func (ct *Controller) Release(pe Pointer) {
	sp := ct.Sphere
	ct.Move(pe)
	switch ct.State {
	case DraggingItems:
		sp.FlushPicks()
		if ct.moved {
			sp.store("node moved")
		} else if ct.press != nil {
			sp.Select(ct.press, events.SelectOne)
		}
	case DraggingNewEdge:
		if ed := &sp.EdgeDrag; ed.Target != nil {
			sp.CreateEdge(ed.Start, ed.Target)
		}
		sp.EdgeDrag = EdgeDrag{}
	case DraggingRubberBand:
		ct.selectBand()
	}
	ct.State = Idle
	ct.press = nil
	sp.FlushDeselected()
}

// movingNodes returns the selected nodes and the end nodes of selected
// edges, once each.
func (ct *Controller) movingNodes() []*Node {
	var nds []*Node
	seen := make(map[*Node]bool)
	add := func(nd *Node) {
		if !seen[nd] {
			seen[nd] = true
			nds = append(nds, nd)
		}
	}
	for _, it := range ct.Sphere.Selected {
		switch x := it.(type) {
		case *Node:
			add(x)
		case *Edge:
			add(x.Start().Node)
			add(x.End().Node)
		}
	}
	return nds
}

// dragItems turns the moving nodes by the rotation of the pointer
// on the sphere surface since the last move.
func (ct *Controller) dragItems(ray math32.Ray) {
	sp := ct.Sphere
	pt, ok := ct.surfacePoint(ray)
	if !ok {
		return
	}
	to := orient.PointerToOffset(pt, sp.Pos, sp.Quat, ct.grab)
	if orient.Pole.MulQuat(to).DistanceTo(orient.Pole.MulQuat(ct.grab)) < 1.0e-5 {
		return
	}
	sp.MoveNodes(ct.movingNodes(), orient.Delta(ct.grab, to))
	ct.grab = to
	ct.moved = true
}

// updateEdgeDrag recomputes the transient edge toward the ray, snapping
// to the socket of another node under the ray.
func (ct *Controller) updateEdgeDrag(ray math32.Ray) {
	sp := ct.Sphere
	ed := &sp.EdgeDrag
	if !ed.Active() {
		return
	}
	ed.Target = nil
	_, it, _ := ct.pick(ray)
	var target *Socket
	switch x := it.(type) {
	case *Node:
		target = x.Socket
	case *Socket:
		target = x
	}
	if target != nil && target.Node != ed.Start.Node {
		ed.Target = target
		ed.End = target.Node.Pos()
	} else if pt, ok := ct.surfacePoint(ray); ok {
		ed.End = pt
	} else {
		return
	}
	st := sp.Universe.Settings
	a := ed.Start.Node.Pos()
	d := orient.GreatCircleDistance(a, ed.End, sp.Radius)
	n := max(int(math32.Ceil(d/st.EdgeUnitLength)), 2)
	ed.Points = orient.ArcPoints(a, ed.End, sp.Pos, sp.Radius+st.EdgeLift, n, ed.Start.Node.DiscRadius()/2)
}

// selectBand adds the items under the rubber band to the selection.
// Hits on sockets select their node.
func (ct *Controller) selectBand() {
	sp := ct.Sphere
	u := sp.Universe
	rays := ct.Camera.RayGrid(ct.band, u.Settings.RubberBandRes)
	for _, id := range u.World.PickBatch(rays) {
		hsp, it := u.Lookup(id)
		if hsp != sp || it == nil {
			continue
		}
		if sk, ok := it.(*Socket); ok {
			it = sk.Node
		}
		sp.Select(it, events.ExtendOne)
	}
}
