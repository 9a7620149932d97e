// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/core/events"
)

// Select updates the selection with the given item according to the
// given mode. [events.SelectOne] replaces the selection, the extend
// modes append to it, and [events.Unselect] removes the item.
// Selecting nil clears the selection. Sockets are not selectable,
// and neither are items of other spheres.
func (sp *Sphere) Select(it Item, mode events.SelectModes) {
	if it == nil {
		if mode != events.NoSelect {
			sp.ClearSelection()
		}
		return
	}
	if it.Kind() == KindSocket || it.AsItemBase().sphere != sp || it.AsItemBase().removed {
		return
	}
	switch mode {
	case events.NoSelect:
	case events.SelectOne:
		if len(sp.Selected) == 1 && sp.Selected[0] == it {
			return
		}
		sp.ClearSelection()
		sp.Selected = append(sp.Selected, it)
	case events.ExtendOne, events.ExtendContinuous, events.SelectQuiet:
		if !sp.IsSelected(it) {
			sp.Selected = append(sp.Selected, it)
		}
	case events.Unselect, events.UnselectQuiet:
		if sp.IsSelected(it) {
			sp.dropSelection(it)
			sp.Deselected = append(sp.Deselected, it)
		}
	}
}

// ClearSelection unselects all items, recording them as deselected.
func (sp *Sphere) ClearSelection() {
	sp.Deselected = append(sp.Deselected, sp.Selected...)
	sp.Selected = nil
}

// IsSelected returns whether the given item is selected.
func (sp *Sphere) IsSelected(it Item) bool {
	return slices.Contains(sp.Selected, it)
}

// Primary returns the primary (first) selected item, or nil.
func (sp *Sphere) Primary() Item {
	if len(sp.Selected) == 0 {
		return nil
	}
	return sp.Selected[0]
}

// dropSelection removes the item from the selected and deselected lists.
func (sp *Sphere) dropSelection(it Item) {
	del := func(s Item) bool { return s == it }
	sp.Selected = slices.DeleteFunc(sp.Selected, del)
	sp.Deselected = slices.DeleteFunc(sp.Deselected, del)
}

// SelectionIDs returns the ids of the selected nodes and edges,
// in selection order.
func (sp *Sphere) SelectionIDs() (nodes, edges []int64) {
	for _, it := range sp.Selected {
		if it.Kind() == KindNode {
			nodes = append(nodes, it.PickID())
		}
		if it.Kind() == KindEdge {
			edges = append(edges, it.PickID())
		}
	}
	return
}

// SelectByIDs adds the nodes and edges with the given ids to the
// selection. Ids that are not found are skipped.
func (sp *Sphere) SelectByIDs(nodes, edges []int64) {
	for _, id := range nodes {
		if nd := sp.Node(id); nd != nil {
			sp.Select(nd, events.SelectQuiet)
		}
	}
	for _, id := range edges {
		if ed := sp.Edge(id); ed != nil {
			sp.Select(ed, events.SelectQuiet)
		}
	}
}

// FlushDeselected calls the [Sphere.OnDeselect] functions for every
// item deselected since the last call and is still unselected,
// once each, and clears the deselected list. It is called once
// at the end of each event cycle.
func (sp *Sphere) FlushDeselected() {
	desel := sp.Deselected
	sp.Deselected = nil
	seen := make(map[Item]bool)
	for _, it := range desel {
		if seen[it] || sp.IsSelected(it) {
			continue
		}
		seen[it] = true
		for _, fun := range sp.onDeselect {
			fun(it)
		}
	}
}
