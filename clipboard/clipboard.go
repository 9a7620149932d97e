// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clipboard provides cut, copy and paste of selected nodes
// and the edges between them.
package clipboard

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/scene"
	"github.com/jinzhu/copier"
)

// Payload is the content of the clipboard, in the serialized
// node and edge format.
type Payload struct {
	Nodes []*scene.NodeDoc `json:"nodes"`
	Edges []*scene.EdgeDoc `json:"edges"`
}

// IsEmpty returns whether there is nothing to paste.
func (pl *Payload) IsEmpty() bool {
	return pl == nil || len(pl.Nodes) == 0
}

// Clone returns a deep copy of the payload.
func (pl *Payload) Clone() *Payload {
	cp := &Payload{}
	errors.Log(copier.CopyWithOption(cp, pl, copier.Option{DeepCopy: true}))
	return cp
}

// Copy returns the selected nodes of the sphere and the edges whose
// two nodes are both selected.
func Copy(sp *scene.Sphere) *Payload {
	pl := &Payload{}
	sel := make(map[*scene.Node]bool)
	for _, nd := range sp.SelectedNodes() {
		sel[nd] = true
		pl.Nodes = append(pl.Nodes, nd.Serialize())
	}
	for _, ed := range sp.Edges() {
		if sel[ed.Start().Node] && sel[ed.End().Node] {
			pl.Edges = append(pl.Edges, ed.Serialize())
		}
	}
	return pl
}

// Cut copies the selection as in [Copy] and then removes
// the selected items, recording a history entry.
func Cut(sp *scene.Sphere) *Payload {
	pl := Copy(sp)
	sp.RemoveDesc("cut", sp.Selected...)
	return pl
}

// Paste adds copies of the payload to the sphere at their copied
// positions, selects them, and records a history entry.
func Paste(sp *scene.Sphere, pl *Payload) ([]*scene.Node, []*scene.Edge) {
	return paste(sp, pl, orient.Identity())
}

// PasteAt pastes as in [Paste], with the group turned so that its
// center lands on the given point on the sphere surface.
func PasteAt(sp *scene.Sphere, pl *Payload, point math32.Vector3) ([]*scene.Node, []*scene.Edge) {
	if pl.IsEmpty() {
		return nil, nil
	}
	offsets := make([]math32.Quat, len(pl.Nodes))
	for i, nd := range pl.Nodes {
		offsets[i] = orient.FromArray(nd.OrientationOffset)
	}
	ctr := orient.Center(offsets)
	to := orient.PointerToOffset(point, sp.Pos, sp.Quat, ctr)
	return paste(sp, pl, orient.Delta(ctr, to))
}

func paste(sp *scene.Sphere, pl *Payload, delta math32.Quat) ([]*scene.Node, []*scene.Edge) {
	if pl.IsEmpty() {
		return nil, nil
	}
	nds, eds := sp.Insert(pl.Nodes, pl.Edges, delta)
	sp.ClearSelection()
	for _, nd := range nds {
		sp.Select(nd, events.ExtendOne)
	}
	for _, ed := range eds {
		sp.Select(ed, events.ExtendOne)
	}
	errors.Log(sp.History.Store("paste", true))
	return nds, eds
}

// Marshal returns the JSON encoding of the payload.
func (pl *Payload) Marshal() ([]byte, error) {
	return jsonx.WriteBytes(pl)
}

// Unmarshal returns the payload from its JSON encoding.
func Unmarshal(b []byte) (*Payload, error) {
	pl := &Payload{}
	if err := jsonx.ReadBytes(pl, b); err != nil {
		return nil, err
	}
	return pl, nil
}
