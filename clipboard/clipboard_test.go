// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clipboard

import (
	"testing"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aboutZ(angle float32) math32.Quat {
	return math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), angle)
}

// triangle returns a sphere with three connected nodes, of which
// the first two are selected.
func triangle(t *testing.T) (*scene.Sphere, []*scene.Node) {
	u := scene.NewUniverse()
	sp := u.NewSphere(math32.Vec3(0, 0, 0), 1)
	a := sp.AddNode(nil, orient.Identity())
	b := sp.AddNode(scene.PersonNodeType, aboutZ(0.6))
	c := sp.AddNode(nil, aboutZ(-0.6))
	require.NotNil(t, sp.CreateEdge(a.Socket, b.Socket))
	require.NotNil(t, sp.CreateEdge(b.Socket, c.Socket))
	sp.Select(a, events.SelectOne)
	sp.Select(b, events.ExtendOne)
	return sp, []*scene.Node{a, b, c}
}

func TestCopy(t *testing.T) {
	sp, nds := triangle(t)
	pl := Copy(sp)
	require.Len(t, pl.Nodes, 2)
	require.Len(t, pl.Edges, 1)
	assert.Equal(t, nds[0].ID, pl.Nodes[0].ID)
	assert.Equal(t, nds[0].Socket.ID, pl.Edges[0].StartSocketID)
	assert.Equal(t, nds[1].Socket.ID, pl.Edges[0].EndSocketID)

	cp := pl.Clone()
	assert.Equal(t, pl, cp)
	cp.Nodes[0].NodeTypeName = "changed"
	assert.Equal(t, "node", pl.Nodes[0].NodeTypeName)

	b, err := pl.Marshal()
	require.NoError(t, err)
	back, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, pl, back)

	_, err = Unmarshal([]byte("{"))
	assert.Error(t, err)
}

func TestCut(t *testing.T) {
	sp, nds := triangle(t)
	pl := Cut(sp)
	assert.Len(t, pl.Nodes, 2)
	assert.True(t, nds[0].IsRemoved())
	assert.True(t, nds[1].IsRemoved())
	assert.Equal(t, []*scene.Node{nds[2]}, sp.Nodes())
	assert.Empty(t, sp.Edges())
	assert.Equal(t, "cut", sp.History.Current().Desc)

	require.True(t, sp.History.Undo())
	assert.Len(t, sp.Nodes(), 3)
	assert.Len(t, sp.Edges(), 2)
	assert.NotNil(t, sp.Node(nds[0].ID))
}

func TestPaste(t *testing.T) {
	sp, nds := triangle(t)
	pl := Copy(sp)
	pnds, peds := Paste(sp, pl)
	require.Len(t, pnds, 2)
	require.Len(t, peds, 1)
	assert.Len(t, sp.Nodes(), 5)
	assert.Len(t, sp.Edges(), 3)
	assert.NotEqual(t, nds[0].ID, pnds[0].ID)
	assert.Equal(t, scene.PersonNodeType, pnds[1].Type)
	assert.True(t, peds[0].Connects(pnds[0].Socket, pnds[1].Socket))
	assert.Less(t, pnds[0].Pos().DistanceTo(nds[0].Pos()), float32(1.0e-4))
	assert.Equal(t, []scene.Item{pnds[0], pnds[1], peds[0]}, sp.Selected)
	assert.Equal(t, "paste", sp.History.Current().Desc)

	// edges to sockets that were not copied are skipped
	pl.Edges[0].EndSocketID = nds[2].Socket.ID
	pnds, peds = Paste(sp, pl)
	assert.Len(t, pnds, 2)
	assert.Empty(t, peds)

	assert.Empty(t, func() []*scene.Node { n, _ := Paste(sp, &Payload{}); return n }())
}

func TestPasteAt(t *testing.T) {
	sp, nds := triangle(t)
	pl := Copy(sp)
	d0 := orient.GreatCircleDistance(nds[0].Pos(), nds[1].Pos(), 1)
	target := math32.Vec3(0, 0, 1)
	pnds, _ := PasteAt(sp, pl, target)
	require.Len(t, pnds, 2)

	// the group keeps its shape, centered at the target
	assert.InDelta(t, d0, orient.GreatCircleDistance(pnds[0].Pos(), pnds[1].Pos(), 1), 1.0e-3)
	mid := pnds[0].Pos().Add(pnds[1].Pos()).Normal()
	assert.Less(t, mid.DistanceTo(target), float32(1.0e-2))
}
