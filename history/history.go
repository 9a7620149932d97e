// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history provides a bounded undo / redo history of full
// state snapshots, replaying the selection that was current when
// each snapshot was stored.
package history

import (
	"fmt"
	"log/slog"
	"slices"
)

// Trace; set to true to get a report of history actions
var Trace = false

// DefaultLimit is the default maximum number of stamps.
const DefaultLimit = 32

// Target is the state managed by a [History].
type Target interface {

	// Snapshot returns the full serialized state.
	Snapshot() ([]byte, error)

	// RestoreSnapshot reconciles the state with one from Snapshot.
	RestoreSnapshot(state []byte) error

	// SelectionIDs returns the ids of the selected nodes and edges.
	SelectionIDs() (nodes, edges []int64)

	// ClearSelection unselects everything.
	ClearSelection()

	// SelectByIDs selects the nodes and edges with the given ids,
	// skipping any that do not exist.
	SelectByIDs(nodes, edges []int64)
}

// Stamp is one undo / redo checkpoint.
type Stamp struct {

	// Desc is the description of the action that led to this state.
	Desc string

	// State is the full serialized state.
	State []byte

	// Nodes and Edges are the ids of the selected nodes and edges.
	Nodes, Edges []int64
}

// History is the undo / redo history of a [Target]. It is not safe
// for concurrent use.
type History struct {

	// Target is the state being recorded.
	Target Target

	// Limit is the maximum number of stamps; the oldest ones are
	// evicted beyond it.
	Limit int

	// Idx is the index of the current stamp, -1 when there are none.
	Idx int

	// Stamps are the stored stamps, oldest first.
	Stamps []*Stamp

	// SelectionChanged is whether the last restore changed the selection.
	SelectionChanged bool

	restoring  bool
	onModified []func()
	onStored   []func(st *Stamp)
}

// New returns a new empty history for the given target, with the
// given limit (DefaultLimit if <= 0).
func New(tg Target, limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{Target: tg, Limit: limit, Idx: -1}
}

// OnModified adds a function called when a stamp that modifies
// the state is stored.
func (hs *History) OnModified(fun func()) {
	hs.onModified = append(hs.onModified, fun)
}

// OnStored adds a function called whenever a stamp is stored.
func (hs *History) OnStored(fun func(st *Stamp)) {
	hs.onStored = append(hs.onStored, fun)
}

// Len returns the number of stamps.
func (hs *History) Len() int {
	return len(hs.Stamps)
}

// Current returns the current stamp, or nil.
func (hs *History) Current() *Stamp {
	if hs.Idx < 0 || hs.Idx >= len(hs.Stamps) {
		return nil
	}
	return hs.Stamps[hs.Idx]
}

// Reset discards all stamps, keeping the target, limit and listeners.
func (hs *History) Reset() {
	hs.Stamps = nil
	hs.Idx = -1
	hs.SelectionChanged = false
}

// Store records the current state and selection of the target as a
// new stamp after the current one, discarding any stamps that could
// have been redone. Stores made while restoring are ignored.
func (hs *History) Store(desc string, setModified bool) error {
	if hs.restoring {
		return nil
	}
	state, err := hs.Target.Snapshot()
	if err != nil {
		return fmt.Errorf("history: storing %q: %w", desc, err)
	}
	st := &Stamp{Desc: desc, State: state}
	nodes, edges := hs.Target.SelectionIDs()
	st.Nodes = slices.Clone(nodes)
	st.Edges = slices.Clone(edges)

	hs.Stamps = append(hs.Stamps[:hs.Idx+1], st)
	if n := len(hs.Stamps) - hs.Limit; n > 0 {
		hs.Stamps = slices.Delete(hs.Stamps, 0, n)
	}
	hs.Idx = len(hs.Stamps) - 1
	if Trace {
		slog.Info("history: stored", "desc", desc, "idx", hs.Idx, "len", len(hs.Stamps))
	}
	if setModified {
		for _, fun := range hs.onModified {
			fun()
		}
	}
	for _, fun := range hs.onStored {
		fun(st)
	}
	return nil
}

// CanUndo returns whether there is a stamp before the current one.
func (hs *History) CanUndo() bool {
	return hs.Idx > 0
}

// CanRedo returns whether there is a stamp after the current one.
func (hs *History) CanRedo() bool {
	return hs.Idx < len(hs.Stamps)-1
}

// Undo restores the stamp before the current one, returning false
// if there is none.
func (hs *History) Undo() bool {
	if !hs.CanUndo() {
		return false
	}
	hs.Idx--
	hs.restoreLogged()
	return true
}

// Redo restores the stamp after the current one, returning false
// if there is none.
func (hs *History) Redo() bool {
	if !hs.CanRedo() {
		return false
	}
	hs.Idx++
	hs.restoreLogged()
	return true
}

func (hs *History) restoreLogged() {
	st := hs.Stamps[hs.Idx]
	if Trace {
		slog.Info("history: restoring", "desc", st.Desc, "idx", hs.Idx)
	}
	changed, err := hs.Restore(st)
	hs.SelectionChanged = changed
	if err != nil {
		slog.Error("history: restore failed", "desc", st.Desc, "err", err)
	}
}

// Restore reconciles the target with the state of the given stamp and
// replays its selection, returning whether the selection changed.
func (hs *History) Restore(st *Stamp) (selectionChanged bool, err error) {
	hs.restoring = true
	defer func() { hs.restoring = false }()
	bn, be := hs.Target.SelectionIDs()
	err = hs.Target.RestoreSnapshot(st.State)
	hs.Target.ClearSelection()
	hs.Target.SelectByIDs(st.Nodes, st.Edges)
	an, ae := hs.Target.SelectionIDs()
	selectionChanged = !sameIDs(bn, an) || !sameIDs(be, ae)
	return
}

// sameIDs returns whether the two id lists hold the same set of ids.
func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
