// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
)

// DefaultEdgeType is the edge_type of edges created interactively.
const DefaultEdgeType = "edge"

// SocketPair is the unordered pair of sockets that an edge connects.
// The order of the two elements is kept for serialization only.
type SocketPair [2]*Socket

// Has returns whether the pair contains the given socket.
func (sp SocketPair) Has(sk *Socket) bool {
	return sp[0] == sk || sp[1] == sk
}

// Other returns the socket at the other end from the given one,
// or nil if the given socket is not in the pair.
func (sp SocketPair) Other(sk *Socket) *Socket {
	switch sk {
	case sp[0]:
		return sp[1]
	case sp[1]:
		return sp[0]
	}
	return nil
}

// Equal returns whether the two pairs contain the same sockets,
// in either order.
func (sp SocketPair) Equal(o SocketPair) bool {
	return (sp[0] == o[0] && sp[1] == o[1]) || (sp[0] == o[1] && sp[1] == o[0])
}

// Edge connects two sockets along the great-circle arc between them.
type Edge struct {
	ItemBase

	// Type is the serialized edge_type.
	Type string

	// Sockets are the two sockets connected by the edge.
	Sockets SocketPair

	// Points is the polyline of the edge along the sphere surface,
	// regenerated whenever either end moves. It is empty when the two
	// nodes are too close together to show an edge between their discs.
	Points []math32.Vector3
}

func (ed *Edge) Kind() Kinds { return KindEdge }

// Start returns the first socket of the edge.
func (ed *Edge) Start() *Socket { return ed.Sockets[0] }

// End returns the second socket of the edge.
func (ed *Edge) End() *Socket { return ed.Sockets[1] }

// Connects returns whether the edge connects the two sockets, in either order.
func (ed *Edge) Connects(a, b *Socket) bool {
	return ed.Sockets.Equal(SocketPair{a, b})
}

// Length returns the great-circle distance between the two nodes.
func (ed *Edge) Length() float32 {
	return orient.GreatCircleDistance(ed.Start().Node.Pos(), ed.End().Node.Pos(), ed.sphere.Radius)
}

// Pos returns the middle of the edge polyline.
func (ed *Edge) Pos() math32.Vector3 {
	if n := len(ed.Points); n > 0 {
		return ed.Points[n/2]
	}
	return ed.Start().Pos().Add(ed.End().Pos()).MulScalar(0.5)
}

func (ed *Edge) PickShape() (pick.Shape, error) {
	return pick.NewRibbon(ed.Points, ed.sphere.Pos, ed.settings().EdgePickWidth)
}

// generate regenerates the polyline from the current node positions:
// one point per [Settings.EdgeUnitLength] of surface distance, and
// clipped by the node disc radius at each end.
func (ed *Edge) generate() {
	sp := ed.sphere
	st := ed.settings()
	sn, en := ed.Start().Node, ed.End().Node
	a, b := sn.Pos(), en.Pos()
	d := orient.GreatCircleDistance(a, b, sp.Radius)
	n := max(int(math32.Ceil(d/st.EdgeUnitLength)), 2)
	clip := max(sn.DiscRadius(), en.DiscRadius())
	ed.Points = orient.ArcPoints(a, b, sp.Pos, sp.Radius+st.EdgeLift, n, clip)
}

func (ed *Edge) update() {
	ed.generate()
	ed.sphere.resetPick(ed)
}
