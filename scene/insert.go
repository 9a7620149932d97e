// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
)

// Insert adds copies of the given nodes and edges with new ids,
// turning every node offset by delta. Edges are connected through the
// new sockets of the copied nodes, so edges to sockets that are not
// among the given nodes are skipped. It does not record history.
func (sp *Sphere) Insert(nodes []*NodeDoc, edges []*EdgeDoc, delta math32.Quat) ([]*Node, []*Edge) {
	var nds []*Node
	var eds []*Edge
	sockets := make(map[int64]*Socket, len(nodes))
	for _, ndoc := range nodes {
		nt, ok := NodeTypeByName(ndoc.NodeTypeName)
		if !ok {
			slog.Warn("scene: unknown node type, using default", "type", ndoc.NodeTypeName)
			nt = DefaultNodeType
		}
		offset := orient.Apply(delta, orient.FromArray(ndoc.OrientationOffset))
		nd := sp.newNode(0, 0, nt, offset)
		nds = append(nds, nd)
		if sid := ndoc.socketID(); sid > 0 {
			sockets[sid] = nd.Socket
		}
	}
	for _, edoc := range edges {
		a, b := sockets[edoc.StartSocketID], sockets[edoc.EndSocketID]
		if !sp.canConnect(a, b) {
			slog.Debug("scene: skipping edge to a socket that was not inserted", "edge", edoc.ID)
			continue
		}
		eds = append(eds, sp.newEdge(0, a, b, edoc.EdgeType))
	}
	return nds, eds
}
