// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"io"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
)

// DocumentType is the type of a universe document.
const DocumentType = "universe"

// Document is the serialized form of a [Universe].
type Document struct {
	ID      string       `json:"id"`
	Type    string       `json:"type"`
	Spheres []*SphereDoc `json:"spheres"`
}

// SphereDoc is the serialized form of a [Sphere].
type SphereDoc struct {
	ID          int64      `json:"id"`
	Pos         [3]float32 `json:"pos"`
	Radius      float32    `json:"radius"`
	Orientation [4]float32 `json:"orientation"`
	TextureID   string     `json:"texture_id"`
	Color       [4]float32 `json:"color"`
	Nodes       []*NodeDoc `json:"nodes"`
	Edges       []*EdgeDoc `json:"edges"`
}

// NodeDoc is the serialized form of a [Node] with its socket.
type NodeDoc struct {
	ID                int64      `json:"id"`
	NodeTypeName      string     `json:"node_type_name"`
	OrientationOffset [4]float32 `json:"orientation_offset"`
	SocketID          int64      `json:"socket_id"`
	Socket            SocketDoc  `json:"socket"`
}

// SocketDoc is the serialized form of a [Socket].
type SocketDoc struct {
	ID int64 `json:"id"`
}

// EdgeDoc is the serialized form of an [Edge].
type EdgeDoc struct {
	ID            int64  `json:"id"`
	EdgeType      string `json:"edge_type"`
	StartSocketID int64  `json:"start_socket_id"`
	EndSocketID   int64  `json:"end_socket_id"`
}

// socketID returns the socket id of the node document, preferring
// the nested socket.
func (nd *NodeDoc) socketID() int64 {
	if nd.Socket.ID != 0 {
		return nd.Socket.ID
	}
	return nd.SocketID
}

func colorToArray(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func colorFromArray(a [4]float32) color.RGBA {
	cv := func(v float32) uint8 {
		return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
	}
	return color.RGBA{cv(a[0]), cv(a[1]), cv(a[2]), cv(a[3])}
}

// Serialize returns the serialized form of the node.
func (nd *Node) Serialize() *NodeDoc {
	return &NodeDoc{
		ID:                nd.ID,
		NodeTypeName:      nd.Type.Name,
		OrientationOffset: orient.ToArray(nd.Offset),
		SocketID:          nd.Socket.ID,
		Socket:            SocketDoc{ID: nd.Socket.ID},
	}
}

// Serialize returns the serialized form of the edge.
func (ed *Edge) Serialize() *EdgeDoc {
	return &EdgeDoc{
		ID:            ed.ID,
		EdgeType:      ed.Type,
		StartSocketID: ed.Start().ID,
		EndSocketID:   ed.End().ID,
	}
}

// Serialize returns the serialized form of the sphere and its items.
func (sp *Sphere) Serialize() *SphereDoc {
	sd := &SphereDoc{
		ID:          sp.ID,
		Pos:         [3]float32{sp.Pos.X, sp.Pos.Y, sp.Pos.Z},
		Radius:      sp.Radius,
		Orientation: orient.ToArray(sp.Quat),
		TextureID:   sp.Texture,
		Color:       colorToArray(sp.Color),
	}
	for _, kv := range sp.Items.Order {
		switch it := kv.Value.(type) {
		case *Node:
			sd.Nodes = append(sd.Nodes, it.Serialize())
		case *Edge:
			sd.Edges = append(sd.Edges, it.Serialize())
		}
	}
	return sd
}

// idMapper decides which incoming item ids are kept in a sphere.
// Ids that are unset, repeated in the document, or used in the universe
// by an item that cannot be reused, are replaced by fresh ids.
type idMapper struct {
	u     *Universe
	taken map[int64]bool
}

func newIDMapper(u *Universe) *idMapper {
	return &idMapper{u: u, taken: make(map[int64]bool)}
}

// keep claims the id for the document if reuse allows it, reporting
// whether it did. Each id is kept at most once.
func (im *idMapper) keep(id int64, reuse func(it Item) bool) bool {
	if id <= 0 || im.taken[id] {
		return false
	}
	if _, isSphere := im.u.Spheres.ValueByKeyTry(id); isSphere {
		return false
	}
	if it := im.u.Item(id); it != nil && !reuse(it) {
		return false
	}
	im.taken[id] = true
	return true
}

// fresh returns a new id that is neither in use in the universe nor
// kept for the document.
func (im *idMapper) fresh() int64 {
	nid := im.u.newID()
	for im.taken[nid] {
		nid = im.u.newID()
	}
	im.taken[nid] = true
	return nid
}

// Deserialize reconciles the sphere and its items with the given
// document: live items are reused by id, missing ones constructed, and
// live items absent from the document removed. Unknown node types fall
// back to [DefaultNodeType]; edges with unknown or invalid sockets are
// skipped. It does not record history.
func (sp *Sphere) Deserialize(sd *SphereDoc) {
	u := sp.Universe
	sp.Pos = math32.Vec3(sd.Pos[0], sd.Pos[1], sd.Pos[2])
	if sd.Radius > 0 {
		sp.Radius = sd.Radius
	}
	sp.Quat = orient.FromArray(sd.Orientation)
	sp.Texture = sd.TextureID
	sp.Color = colorFromArray(sd.Color)
	sp.resetPick(sp)

	// first pass: decide which incoming ids can be kept
	im := newIDMapper(u)
	nodeIDs := make([]int64, len(sd.Nodes))
	sockIDs := make([]int64, len(sd.Nodes))
	for i, nd := range sd.Nodes {
		ownNode := func(it Item) bool {
			live, ok := it.(*Node)
			return ok && live.sphere == sp
		}
		if im.keep(nd.ID, ownNode) {
			nodeIDs[i] = nd.ID
			live := sp.Node(nd.ID)
			if im.keep(nd.socketID(), func(it Item) bool {
				return live != nil && it == Item(live.Socket)
			}) {
				sockIDs[i] = nd.socketID()
			}
		}
	}
	edgeIDs := make([]int64, len(sd.Edges))
	for i, ed := range sd.Edges {
		ownEdge := func(it Item) bool {
			live, ok := it.(*Edge)
			return ok && live.sphere == sp
		}
		if im.keep(ed.ID, ownEdge) {
			edgeIDs[i] = ed.ID
		}
	}
	for i := range sd.Nodes {
		if nodeIDs[i] == 0 {
			nodeIDs[i] = im.fresh()
		}
		if sockIDs[i] == 0 {
			sockIDs[i] = im.fresh()
		}
	}
	for i := range edgeIDs {
		if edgeIDs[i] == 0 {
			edgeIDs[i] = im.fresh()
		}
	}

	// remove live items that are not in the document
	want := make(map[int64]bool, len(sd.Nodes)+len(sd.Edges))
	for _, id := range nodeIDs {
		want[id] = true
	}
	for _, id := range edgeIDs {
		want[id] = true
	}
	var gone []Item
	for _, kv := range sp.Items.Order {
		if kv.Value.Kind() != KindSocket && !want[kv.Key] {
			gone = append(gone, kv.Value)
		}
	}
	sp.removeItems(gone)

	// nodes
	sockets := make(map[int64]*Socket, len(sd.Nodes))
	for i, ndoc := range sd.Nodes {
		nt, ok := NodeTypeByName(ndoc.NodeTypeName)
		if !ok {
			slog.Warn("scene: unknown node type, using default", "type", ndoc.NodeTypeName, "node", ndoc.ID)
			nt = DefaultNodeType
		}
		id := nodeIDs[i]
		offset := orient.FromArray(ndoc.OrientationOffset)
		nd := sp.Node(id)
		if nd != nil {
			nd.Type = nt
			nd.Offset = offset
		} else {
			nd = sp.newNode(id, sockIDs[i], nt, offset)
		}
		if sid := ndoc.socketID(); sid > 0 {
			if _, dup := sockets[sid]; dup {
				slog.Debug("scene: duplicate socket id, edges use the first", "socket", sid, "node", ndoc.ID)
			} else {
				sockets[sid] = nd.Socket
			}
		}
	}

	// edges
	for i, edoc := range sd.Edges {
		a, b := sockets[edoc.StartSocketID], sockets[edoc.EndSocketID]
		if a == nil || b == nil || a.Node == b.Node {
			slog.Debug("scene: skipping edge with invalid sockets", "edge", edoc.ID,
				"start", edoc.StartSocketID, "end", edoc.EndSocketID)
			continue
		}
		id := edgeIDs[i]
		if ed := sp.Edge(id); ed != nil {
			if ed.Connects(a, b) {
				ed.Type = edoc.EdgeType
				continue
			}
			sp.removeItems([]Item{ed})
		}
		if sp.FindEdge(a, b) != nil {
			slog.Debug("scene: skipping duplicate edge", "edge", edoc.ID)
			continue
		}
		sp.newEdge(id, a, b, edoc.EdgeType)
	}
	sp.refreshItems()
}

// Snapshot returns the serialized state of the sphere, for the history.
func (sp *Sphere) Snapshot() ([]byte, error) {
	return jsonx.WriteBytes(sp.Serialize())
}

// RestoreSnapshot reconciles the sphere with a state from [Sphere.Snapshot].
func (sp *Sphere) RestoreSnapshot(state []byte) error {
	sd := &SphereDoc{}
	if err := jsonx.ReadBytes(sd, state); err != nil {
		return err
	}
	sp.Deserialize(sd)
	return nil
}

// Serialize returns the serialized form of the universe.
func (u *Universe) Serialize() *Document {
	doc := &Document{ID: u.ID, Type: DocumentType}
	for _, kv := range u.Spheres.Order {
		doc.Spheres = append(doc.Spheres, kv.Value.Serialize())
	}
	return doc
}

// Deserialize reconciles the universe with the given document, reusing
// spheres by id, adding missing ones and removing those absent from it.
// The history of each sphere starts over from the loaded state.
func (u *Universe) Deserialize(doc *Document) {
	if doc.ID != "" {
		u.ID = doc.ID
	}
	want := make(map[int64]bool, len(doc.Spheres))
	for _, sd := range doc.Spheres {
		want[sd.ID] = true
	}
	for _, sp := range u.Spheres.Values() {
		if !want[sp.ID] {
			u.RemoveSphere(sp)
		}
	}
	for _, sd := range doc.Spheres {
		sp := u.Sphere(sd.ID)
		if sp == nil {
			id := sd.ID
			if id <= 0 || u.hasID(id) {
				id = 0
			}
			sp = u.newSphere(id, math32.Vec3(sd.Pos[0], sd.Pos[1], sd.Pos[2]), sd.Radius)
		}
		sp.Deserialize(sd)
		sp.History.Reset()
		errors.Log(sp.History.Store("loaded", false))
		sp.Modified = false
	}
}

// Write writes the universe document as JSON to the given writer.
func (u *Universe) Write(w io.Writer) error {
	return jsonx.WriteIndent(u.Serialize(), w)
}

// Read reads a universe document as JSON from the given reader
// and reconciles the universe with it.
func (u *Universe) Read(r io.Reader) error {
	doc := &Document{}
	if err := jsonx.Read(doc, r); err != nil {
		return err
	}
	u.Deserialize(doc)
	return nil
}

// Save saves the universe document to the given JSON file.
func (u *Universe) Save(filename string) error {
	if err := jsonx.Save(u.Serialize(), filename); err != nil {
		return err
	}
	for _, sp := range u.Spheres.Values() {
		sp.Modified = false
	}
	return nil
}

// Open opens a universe document from the given JSON file.
func (u *Universe) Open(filename string) error {
	doc := &Document{}
	if err := jsonx.Open(doc, filename); err != nil {
		return err
	}
	u.Deserialize(doc)
	return nil
}
