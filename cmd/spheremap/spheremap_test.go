// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"cogentcore.org/spheremap/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoInfoPick(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "demo.json")
	c := &Config{Output: fn}
	c.Demo = DemoConfig{Nodes: 6, Radius: 1}
	require.NoError(t, Demo(c))

	u := scene.NewUniverse()
	require.NoError(t, u.Open(fn))
	require.Equal(t, 1, u.Spheres.Len())
	sp := u.Spheres.ValueByIndex(0)
	// hub, ring, and the two pasted ring nodes
	assert.Len(t, sp.Nodes(), 9)
	// spokes, ring, and the pasted ring edge
	assert.Len(t, sp.Edges(), 13)

	c = &Config{Input: fn}
	require.NoError(t, Info(c))

	c.Pick = PickConfig{X: 400, Y: 300, Width: 800, Height: 600, Distance: 5}
	require.NoError(t, Pick(c))

	assert.Error(t, Info(&Config{Input: filepath.Join(t.TempDir(), "missing.json")}))
	assert.Error(t, Pick(&Config{}))
}
