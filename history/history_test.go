// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a target whose state is a single number.
type counter struct {
	value    int
	selected []int64
	fail     bool
	history  *History
}

func (ct *counter) Snapshot() ([]byte, error) {
	if ct.fail {
		return nil, errors.New("snapshot failed")
	}
	return []byte(strconv.Itoa(ct.value)), nil
}

func (ct *counter) RestoreSnapshot(state []byte) error {
	v, err := strconv.Atoi(string(state))
	if err != nil {
		return err
	}
	ct.value = v
	if ct.history != nil {
		// stores made while restoring are ignored
		ct.history.Store("nested", true)
	}
	return nil
}

func (ct *counter) SelectionIDs() (nodes, edges []int64) {
	return slices.Clone(ct.selected), nil
}

func (ct *counter) ClearSelection() { ct.selected = nil }

func (ct *counter) SelectByIDs(nodes, edges []int64) {
	for _, id := range nodes {
		if id < 100 {
			ct.selected = append(ct.selected, id)
		}
	}
}

func TestBounds(t *testing.T) {
	ct := &counter{}
	hs := New(ct, 0)
	assert.Equal(t, DefaultLimit, hs.Limit)
	assert.False(t, hs.Undo())
	assert.False(t, hs.Redo())

	for i := range 40 {
		ct.value = i
		require.NoError(t, hs.Store(strconv.Itoa(i), true))
	}
	assert.Equal(t, 32, hs.Len())
	assert.Equal(t, "8", hs.Stamps[0].Desc)
	assert.Equal(t, "39", hs.Current().Desc)
	assert.Equal(t, 31, hs.Idx)

	n := 0
	for hs.Undo() {
		n++
	}
	assert.Equal(t, 31, n)
	assert.Equal(t, 0, hs.Idx)
	assert.Equal(t, 8, ct.value)
	assert.False(t, hs.Undo())
	assert.Equal(t, 0, hs.Idx)

	for hs.Redo() {
	}
	assert.Equal(t, 31, hs.Idx)
	assert.Equal(t, 39, ct.value)
	assert.False(t, hs.Redo())
}

func TestTruncateRedo(t *testing.T) {
	ct := &counter{}
	hs := New(ct, 5)
	for i := range 4 {
		ct.value = i
		hs.Store(strconv.Itoa(i), true)
	}
	hs.Undo()
	hs.Undo()
	assert.True(t, hs.CanRedo())
	ct.value = 10
	hs.Store("10", true)
	assert.False(t, hs.CanRedo())
	assert.Equal(t, []string{"0", "1", "10"}, descs(hs))
}

func descs(hs *History) []string {
	var ds []string
	for _, st := range hs.Stamps {
		ds = append(ds, st.Desc)
	}
	return ds
}

func TestSelectionReplay(t *testing.T) {
	ct := &counter{}
	hs := New(ct, 0)
	ct.history = hs
	ct.selected = []int64{7}
	hs.Store("X", true)
	ct.selected = nil
	hs.Store("Y", true)

	require.True(t, hs.Undo())
	assert.Equal(t, []int64{7}, ct.selected)
	assert.True(t, hs.SelectionChanged)
	assert.Equal(t, 2, hs.Len())

	// unknown ids are skipped
	ct.selected = []int64{7, 200}
	hs.Store("Z", true)
	ct.selected = nil
	changed, err := hs.Restore(hs.Current())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int64{7}, ct.selected)

	changed, err = hs.Restore(hs.Stamps[0])
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestListeners(t *testing.T) {
	ct := &counter{}
	hs := New(ct, 0)
	modified, stored := 0, 0
	hs.OnModified(func() { modified++ })
	hs.OnStored(func(st *Stamp) { stored++ })
	hs.Store("created", false)
	hs.Store("changed", true)
	assert.Equal(t, 1, modified)
	assert.Equal(t, 2, stored)

	ct.fail = true
	assert.Error(t, hs.Store("failed", true))
	assert.Equal(t, 2, hs.Len())
}

func TestReset(t *testing.T) {
	ct := &counter{}
	hs := New(ct, 0)
	modified := 0
	hs.OnModified(func() { modified++ })
	for i := range 3 {
		ct.value = i
		require.NoError(t, hs.Store(strconv.Itoa(i), true))
	}
	hs.Reset()
	assert.Equal(t, 0, hs.Len())
	assert.Equal(t, -1, hs.Idx)
	assert.Nil(t, hs.Current())
	assert.False(t, hs.Undo())
	assert.False(t, hs.Redo())

	// listeners survive a reset
	require.NoError(t, hs.Store("loaded", true))
	assert.Equal(t, 4, modified)
	assert.False(t, hs.CanUndo())
}
