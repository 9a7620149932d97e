// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/history"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
)

// Sphere is a spherical surface hosting nodes, their sockets, and the
// edges between them. It owns its items, its selection, and its
// undo history.
type Sphere struct {

	// ID is the stable id of the sphere, unique within its universe.
	ID int64

	// Universe is the universe that owns the sphere.
	Universe *Universe

	// Pos is the world position of the center.
	Pos math32.Vector3

	// Radius is the radius of the sphere surface.
	Radius float32

	// Quat is the orientation of the sphere. The world rotation of the
	// sphere is its inverse; see [orient.Cumulative].
	Quat math32.Quat

	// Texture is the texture reference handed to the renderer.
	Texture string

	// Color is the base color of the sphere.
	Color color.RGBA

	// Items are the nodes, sockets and edges of the sphere, by id,
	// in creation order.
	Items *ordmap.Map[int64, Item]

	// Selected are the selected items. The first one is the primary selection.
	Selected []Item

	// Deselected are the items deselected during the current event cycle,
	// cleared by [Sphere.FlushDeselected].
	Deselected []Item

	// History is the undo / redo history of the sphere.
	History *history.History

	// EdgeDrag is the transient edge shown while dragging out a new edge.
	EdgeDrag EdgeDrag

	// Modified is whether the sphere has changed since it was last saved.
	Modified bool

	onDeselect []func(it Item)

	// dirty holds items whose collision objects need a reset, while
	// resets are deferred during a drag.
	dirty   map[int64]Item
	removed bool
}

func (sp *Sphere) Kind() Kinds { return KindSphere }

func (sp *Sphere) PickID() int64 { return sp.ID }

func (sp *Sphere) PickShape() (pick.Shape, error) {
	return pick.NewSphere(sp.Pos, sp.Radius)
}

// IsRemoved returns whether the sphere has been removed from its universe.
func (sp *Sphere) IsRemoved() bool {
	return sp.removed
}

// Nodes returns the nodes of the sphere, in creation order.
func (sp *Sphere) Nodes() []*Node {
	return itemsOf[*Node](sp)
}

// Edges returns the edges of the sphere, in creation order.
func (sp *Sphere) Edges() []*Edge {
	return itemsOf[*Edge](sp)
}

// Sockets returns the sockets of the sphere, in creation order.
func (sp *Sphere) Sockets() []*Socket {
	return itemsOf[*Socket](sp)
}

func itemsOf[T Item](sp *Sphere) []T {
	var ts []T
	for _, kv := range sp.Items.Order {
		if t, ok := kv.Value.(T); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// Item returns the item of the sphere with the given id, or nil.
func (sp *Sphere) Item(id int64) Item {
	it, _ := sp.Items.ValueByKeyTry(id)
	return it
}

// Node returns the node with the given id, or nil.
func (sp *Sphere) Node(id int64) *Node {
	nd, _ := sp.Item(id).(*Node)
	return nd
}

// Socket returns the socket with the given id, or nil.
func (sp *Sphere) Socket(id int64) *Socket {
	sk, _ := sp.Item(id).(*Socket)
	return sk
}

// Edge returns the edge with the given id, or nil.
func (sp *Sphere) Edge(id int64) *Edge {
	ed, _ := sp.Item(id).(*Edge)
	return ed
}

// OnDeselect adds a function called for each deselected item
// by [Sphere.FlushDeselected].
func (sp *Sphere) OnDeselect(fun func(it Item)) {
	sp.onDeselect = append(sp.onDeselect, fun)
}

// resetPick resets the collision object of the given item, or records
// it for [Sphere.FlushPicks] while resets are deferred. Items whose
// shape cannot be built stay unpickable.
func (sp *Sphere) resetPick(it pick.Pickable) {
	if sp.dirty != nil {
		sp.dirty[it.PickID()] = nil
		if item, ok := it.(Item); ok {
			sp.dirty[it.PickID()] = item
		}
		return
	}
	if _, err := sp.Universe.World.Reset(it); err != nil {
		slog.Debug("scene: item is unpickable", "item", it.PickID(), "err", err)
	}
}

// DeferPicks defers collision object resets until [Sphere.FlushPicks],
// so that items moved many times during a drag are reset only once.
func (sp *Sphere) DeferPicks() {
	if sp.dirty == nil {
		sp.dirty = make(map[int64]Item)
	}
}

// FlushPicks resets the collision object of every item moved since
// [Sphere.DeferPicks], once each, and stops deferring.
func (sp *Sphere) FlushPicks() {
	dirty := sp.dirty
	sp.dirty = nil
	for _, kv := range sp.Items.Order {
		if _, ok := dirty[kv.Key]; ok {
			sp.resetPick(kv.Value)
		}
	}
}

// add adds a newly constructed item to the sphere and creates its
// collision object.
func (sp *Sphere) add(it Item) {
	ib := it.AsItemBase()
	ib.sphere = sp
	sp.Universe.register(it)
	sp.Items.Add(ib.ID, it)
	if _, err := sp.Universe.World.Create(it); err != nil {
		slog.Debug("scene: item is unpickable", "item", ib.ID, "err", err)
	}
}

// newNode constructs a node with its socket, with the given ids
// (0 for a new id). It does not record history.
func (sp *Sphere) newNode(id, socketID int64, nt *NodeType, offset math32.Quat) *Node {
	u := sp.Universe
	if id == 0 {
		id = u.newID()
	}
	if socketID == 0 {
		socketID = u.newID()
	}
	if nt == nil {
		nt = DefaultNodeType
	}
	nd := &Node{ItemBase: ItemBase{ID: id, sphere: sp}, Type: nt, Offset: offset}
	nd.Socket = &Socket{ItemBase: ItemBase{ID: socketID, sphere: sp}, Node: nd}
	sp.add(nd)
	sp.add(nd.Socket)
	return nd
}

// AddNode adds a new node of the given type at the given offset,
// recording it in the history.
func (sp *Sphere) AddNode(nt *NodeType, offset math32.Quat) *Node {
	nd := sp.newNode(0, 0, nt, offset)
	sp.store("node created")
	return nd
}

// AddNodeAt adds a new node of the given type at the given point
// on the sphere surface, recording it in the history.
func (sp *Sphere) AddNodeAt(nt *NodeType, point math32.Vector3) *Node {
	return sp.AddNode(nt, orient.PointerToOffset(point, sp.Pos, sp.Quat, orient.Identity()))
}

// newEdge constructs an edge between the two sockets with the given
// id (0 for a new id). It does not record history.
func (sp *Sphere) newEdge(id int64, a, b *Socket, typ string) *Edge {
	if id == 0 {
		id = sp.Universe.newID()
	}
	if typ == "" {
		typ = DefaultEdgeType
	}
	ed := &Edge{ItemBase: ItemBase{ID: id, sphere: sp}, Type: typ, Sockets: SocketPair{a, b}}
	ed.generate()
	a.Edges = append(a.Edges, ed)
	b.Edges = append(b.Edges, ed)
	sp.add(ed)
	return ed
}

// FindEdge returns the edge connecting the two sockets in either order, or nil.
func (sp *Sphere) FindEdge(a, b *Socket) *Edge {
	if a == nil || b == nil {
		return nil
	}
	return a.EdgeTo(b)
}

// canConnect returns whether a new edge may connect the two sockets.
func (sp *Sphere) canConnect(a, b *Socket) bool {
	if a == nil || b == nil || a == b || a.Node == b.Node {
		return false
	}
	if a.sphere != sp || b.sphere != sp || a.removed || b.removed {
		return false
	}
	return sp.FindEdge(a, b) == nil
}

// CreateEdge creates a new edge between the two sockets and records it
// in the history. It returns nil, creating nothing, if an edge between
// them already exists in either order, or if they cannot be connected.
func (sp *Sphere) CreateEdge(a, b *Socket) *Edge {
	if !sp.canConnect(a, b) {
		return nil
	}
	ed := sp.newEdge(0, a, b, DefaultEdgeType)
	sp.store("edge created")
	return ed
}

// Remove removes the given items and everything depending on them,
// recording one history entry. Removing a node or its socket removes
// both along with all of their edges.
func (sp *Sphere) Remove(items ...Item) {
	sp.RemoveDesc("items removed", items...)
}

// RemoveDesc removes as in [Sphere.Remove], recording the history
// entry with the given description.
func (sp *Sphere) RemoveDesc(desc string, items ...Item) {
	if sp.removeItems(items) > 0 {
		sp.store(desc)
	}
}

// RemoveSelected removes all selected items.
func (sp *Sphere) RemoveSelected() {
	sp.Remove(sp.Selected...)
}

// removeItems removes the given items with their dependents without
// recording history, returning the number of items removed. The full
// set is collected depth first before anything is detached.
func (sp *Sphere) removeItems(items []Item) int {
	var gone []Item
	seen := make(map[int64]bool)
	mark := func(it Item) {
		ib := it.AsItemBase()
		if ib.removed || ib.sphere != sp || seen[ib.ID] {
			return
		}
		seen[ib.ID] = true
		gone = append(gone, it)
	}
	markNode := func(nd *Node) {
		for _, ed := range nd.Socket.Edges {
			mark(ed)
		}
		mark(nd.Socket)
		mark(nd)
	}
	for _, it := range items {
		switch x := it.(type) {
		case *Node:
			markNode(x)
		case *Socket:
			markNode(x.Node)
		case *Edge:
			mark(x)
		}
	}
	for _, it := range gone {
		sp.detach(it)
	}
	return len(gone)
}

// detach removes a single item from the sphere, its universe and the
// collision world, and marks it removed.
func (sp *Sphere) detach(it Item) {
	ib := it.AsItemBase()
	if ed, ok := it.(*Edge); ok {
		ed.Start().detach(ed)
		ed.End().detach(ed)
	}
	if sp.Universe.World.Has(ib.ID) {
		errors.Log(sp.Universe.World.DeleteItem(ib.ID))
	}
	delete(sp.dirty, ib.ID)
	sp.Items.DeleteKey(ib.ID)
	sp.Universe.unregister(ib.ID)
	sp.dropSelection(it)
	ib.removed = true
}

// Rotate turns the world rotation of the sphere by delta, carrying all
// of its items with it.
func (sp *Sphere) Rotate(delta math32.Quat) {
	sp.Quat = orient.RotateSphere(sp.Quat, delta)
	sp.refreshItems()
}

// SetPos moves the center of the sphere, carrying all of its items with it.
func (sp *Sphere) SetPos(pos math32.Vector3) {
	sp.Pos = pos
	sp.resetPick(sp)
	sp.refreshItems()
}

// MoveNodes applies the rotation delta to the offsets of the given nodes.
// Edges are regenerated once each, and collision objects are reset once
// each, or deferred if [Sphere.DeferPicks] is in effect.
func (sp *Sphere) MoveNodes(nodes []*Node, delta math32.Quat) {
	var edges []*Edge
	seen := make(map[*Edge]bool)
	for _, nd := range nodes {
		nd.Offset = orient.Apply(delta, nd.Offset)
		sp.resetPick(nd)
		sp.resetPick(nd.Socket)
		for _, ed := range nd.Socket.Edges {
			if !seen[ed] {
				seen[ed] = true
				edges = append(edges, ed)
			}
		}
	}
	for _, ed := range edges {
		ed.update()
	}
}

// refreshItems recomputes every item and resets each collision object
// exactly once.
func (sp *Sphere) refreshItems() {
	for _, kv := range sp.Items.Order {
		switch it := kv.Value.(type) {
		case *Edge:
			it.update()
		default:
			sp.resetPick(it)
		}
	}
}

// SelectedNodes returns the selected nodes, in selection order.
func (sp *Sphere) SelectedNodes() []*Node {
	var nds []*Node
	for _, it := range sp.Selected {
		if nd, ok := it.(*Node); ok {
			nds = append(nds, nd)
		}
	}
	return nds
}

// store records a history entry that marks the sphere modified.
func (sp *Sphere) store(desc string) {
	if sp.History == nil {
		return
	}
	errors.Log(sp.History.Store(desc, true))
}
