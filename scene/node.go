// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
)

// Node is a disc on the surface of a sphere. Its position is
// determined entirely by its Offset and the orientation of its sphere.
// Every node owns exactly one [Socket], created with it.
type Node struct {
	ItemBase

	// Type is the registered variant of the node.
	Type *NodeType

	// Offset is the rotation taking the pole to the node,
	// in the frame of the sphere.
	Offset math32.Quat

	// Socket is the socket owned by the node.
	Socket *Socket
}

func (nd *Node) Kind() Kinds { return KindNode }

// Cumulative returns the world rotation of the node.
func (nd *Node) Cumulative() math32.Quat {
	return orient.Cumulative(nd.Offset, nd.sphere.Quat)
}

// Pos returns the world position of the node, on the sphere surface.
func (nd *Node) Pos() math32.Vector3 {
	return orient.Place(nd.Cumulative(), nd.sphere.Pos, nd.sphere.Radius)
}

// Quat returns the world orientation of the node, facing outward.
func (nd *Node) Quat() math32.Quat {
	return orient.Outward(nd.Pos(), nd.sphere.Pos)
}

// DiscRadius returns the radius of the node disc.
func (nd *Node) DiscRadius() float32 {
	return nd.settings().NodeDiscRadius * nd.Type.DiscScale
}

func (nd *Node) PickShape() (pick.Shape, error) {
	pos := nd.Pos()
	return pick.NewCylinder(pos, pos.Sub(nd.sphere.Pos), nd.DiscRadius(), 0, nd.settings().NodeThickness/2)
}

// SetOffset moves the node to the given offset, updating its socket
// and edges, and their collision objects.
func (nd *Node) SetOffset(offset math32.Quat) {
	nd.Offset = offset
	nd.update()
}

// MoveTo moves the node to the given point on its sphere surface.
func (nd *Node) MoveTo(point math32.Vector3) {
	sp := nd.sphere
	nd.SetOffset(orient.PointerToOffset(point, sp.Pos, sp.Quat, nd.Offset))
}

func (nd *Node) update() {
	nd.sphere.resetPick(nd)
	nd.Socket.update()
	for _, ed := range nd.Socket.Edges {
		ed.update()
	}
}

// Edges returns the edges connected to the node.
func (nd *Node) Edges() []*Edge {
	return nd.Socket.Edges
}
