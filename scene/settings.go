// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// Settings are the geometry and behavior parameters of a [Universe].
// All lengths are in world units.
type Settings struct {

	// NodeDiscRadius is the radius of a node disc with a disc scale of 1.
	// Edges are clipped by this distance at each end.
	NodeDiscRadius float32 `default:"0.08"`

	// NodeThickness is the thickness of node and socket discs.
	NodeThickness float32 `default:"0.01"`

	// SocketLift is how far above the sphere surface sockets sit.
	SocketLift float32 `default:"0.01"`

	// SocketInner is the inner radius of the socket ring,
	// as a proportion of the node disc radius.
	SocketInner float32 `default:"0.7"`

	// SocketOuter is the outer radius of the socket ring,
	// as a proportion of the node disc radius.
	SocketOuter float32 `default:"1.15"`

	// EdgeLift is how far above the sphere surface edges are drawn.
	EdgeLift float32 `default:"0.002"`

	// EdgeUnitLength is the surface length per edge polyline point.
	EdgeUnitLength float32 `default:"0.05"`

	// EdgePickWidth is the half width of the ribbon used to pick edges.
	EdgePickWidth float32 `default:"0.02"`

	// HistoryLimit is the maximum number of undo stamps per sphere.
	HistoryLimit int `default:"32"`

	// RubberBandRes is the number of picking rays along each side
	// of the rubber-band rectangle.
	RubberBandRes int `default:"16"`
}

// Defaults sets all settings to their default values.
func (st *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(st))
}
