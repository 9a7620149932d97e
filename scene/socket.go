// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
)

// Socket is the connection ring of a [Node]. It mirrors the position
// of its node slightly above the surface, and holds the edges
// connected to the node.
type Socket struct {
	ItemBase

	// Node is the node that owns the socket.
	Node *Node

	// Edges are the edges connected to the socket.
	Edges []*Edge
}

func (sk *Socket) Kind() Kinds { return KindSocket }

// Pos returns the world position of the socket, above its node.
func (sk *Socket) Pos() math32.Vector3 {
	sp := sk.sphere
	return orient.Place(sk.Node.Cumulative(), sp.Pos, sp.Radius+sk.settings().SocketLift)
}

// Quat returns the world orientation of the socket, facing outward.
func (sk *Socket) Quat() math32.Quat {
	return orient.Outward(sk.Pos(), sk.sphere.Pos)
}

func (sk *Socket) PickShape() (pick.Shape, error) {
	st := sk.settings()
	pos := sk.Pos()
	r := sk.Node.DiscRadius()
	return pick.NewCylinder(pos, pos.Sub(sk.sphere.Pos), r*st.SocketOuter, r*st.SocketInner, st.NodeThickness/2)
}

func (sk *Socket) update() {
	sk.sphere.resetPick(sk)
}

// EdgeTo returns the edge between this socket and the other one, or nil.
func (sk *Socket) EdgeTo(other *Socket) *Edge {
	for _, ed := range sk.Edges {
		if ed.Connects(sk, other) {
			return ed
		}
	}
	return nil
}

// detach removes the given edge from the edges of the socket.
func (sk *Socket) detach(ed *Edge) {
	sk.Edges = slices.DeleteFunc(slices.Clone(sk.Edges), func(e *Edge) bool {
		return e == ed
	})
}
