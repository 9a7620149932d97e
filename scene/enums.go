// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

//go:generate core generate

// Kinds are the kinds of things that make up a sphere scene.
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// KindSphere is the background sphere itself.
	KindSphere Kinds = iota

	// KindNode is a draggable node on the sphere surface.
	KindNode

	// KindSocket is the connection ring owned by each node.
	KindSocket

	// KindEdge connects two sockets along the sphere surface.
	KindEdge
)

// DragStates are the states of the pointer [Controller].
type DragStates int32 //enums:enum

const (
	// Idle is when no pointer button is down.
	Idle DragStates = iota

	// DraggingItems moves the selected nodes along the sphere.
	DraggingItems

	// DraggingNewEdge draws a new edge out from a socket.
	DraggingNewEdge

	// DraggingRubberBand selects everything within a screen rectangle.
	DraggingRubberBand
)
