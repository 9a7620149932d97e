// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick provides a picking-only collision world: a set of
// simplified shapes mirroring every pickable scene item, answering
// which item a ray hits first and which items a grid of rays hits.
// There are no dynamics; shapes are only ever created, recreated
// at a new transform, and deleted.
package pick

import (
	"fmt"
	"sort"

	"cogentcore.org/core/math32"
)

// ShapeID is the opaque handle of a collision object in a [World].
type ShapeID int64

// Pickable is an item that can be mirrored in a [World].
type Pickable interface {

	// PickID returns the stable id of the item.
	PickID() int64

	// PickShape returns the collision shape for the current
	// position and orientation of the item.
	PickShape() (Shape, error)
}

// Object is one collision object in the world.
type Object struct {
	ID    ShapeID
	Item  int64
	Shape Shape
	BBox  math32.Box3
}

// Hit is the result of a successful pick.
type Hit struct {

	// Item is the id of the item that was hit.
	Item int64

	// Point is the world point where the ray hit the item.
	Point math32.Vector3

	// Dist is the distance from the ray origin to Point.
	Dist float32
}

// World is the collision world. It is not safe for concurrent use;
// all access happens on the single event / frame thread.
type World struct {
	objects map[ShapeID]*Object
	byItem  map[int64]ShapeID
	lastID  ShapeID

	// Created and Deleted count the lifetime create and delete calls,
	// which must balance against Len.
	Created, Deleted int
}

// NewWorld returns a new empty collision world.
func NewWorld() *World {
	return &World{
		objects: make(map[ShapeID]*Object),
		byItem:  make(map[int64]ShapeID),
	}
}

// Len returns the number of live collision objects.
func (wr *World) Len() int {
	return len(wr.objects)
}

// Has returns whether the item with the given id has a collision object.
func (wr *World) Has(item int64) bool {
	_, ok := wr.byItem[item]
	return ok
}

// Object returns the collision object for the given item id, or nil.
func (wr *World) Object(item int64) *Object {
	sid, ok := wr.byItem[item]
	if !ok {
		return nil
	}
	return wr.objects[sid]
}

// Create allocates a collision object for the item at its current
// transform. It panics if the item already has one, as that is a
// violation of the create / reset / delete protocol. If the shape
// cannot be built the item stays unpickable and the error is returned.
func (wr *World) Create(it Pickable) (ShapeID, error) {
	id := it.PickID()
	if sid, has := wr.byItem[id]; has {
		panic(fmt.Sprintf("pick.World: item %d is already registered as shape %d", id, sid))
	}
	sh, err := it.PickShape()
	if err != nil {
		return 0, fmt.Errorf("pick.World: item %d is unpickable: %w", id, err)
	}
	wr.lastID++
	ob := &Object{ID: wr.lastID, Item: id, Shape: sh, BBox: sh.BBox()}
	wr.objects[ob.ID] = ob
	wr.byItem[id] = ob.ID
	wr.Created++
	return ob.ID, nil
}

// Delete removes the collision object of the item. It returns an error
// if the item has none, which means it was deleted twice or never
// created.
func (wr *World) Delete(it Pickable) error {
	return wr.DeleteItem(it.PickID())
}

// DeleteItem removes the collision object of the item with the given id.
func (wr *World) DeleteItem(item int64) error {
	sid, has := wr.byItem[item]
	if !has {
		return fmt.Errorf("pick.World: item %d has no collision object to delete", item)
	}
	delete(wr.objects, sid)
	delete(wr.byItem, item)
	wr.Deleted++
	return nil
}

// Reset recreates the collision object of the item at its current
// transform. Updating shapes in place is not supported: the old object
// is deleted (if any) and a new one created.
func (wr *World) Reset(it Pickable) (ShapeID, error) {
	if wr.Has(it.PickID()) {
		wr.DeleteItem(it.PickID())
	}
	return wr.Create(it)
}

// normRay returns the ray with a unit direction, and false for a
// zero-length direction.
func normRay(ray math32.Ray) (math32.Ray, bool) {
	if ray.Dir.Length() < 1.0e-6 || math32.IsNaN(ray.Dir.X) {
		return ray, false
	}
	ray.Dir = ray.Dir.Normal()
	return ray, true
}

// candidates returns the objects whose bounding box the ray enters,
// sorted by id so that results are stable.
func (wr *World) candidates(ray math32.Ray) []*Object {
	var cs []*Object
	for _, ob := range wr.objects {
		if _, has := ray.IntersectBox(ob.BBox); has {
			cs = append(cs, ob)
		}
	}
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].ID < cs[j].ID
	})
	return cs
}

// Pick returns the closest item hit by the ray within maxDist of its
// origin (no limit if maxDist <= 0). Degenerate rays and misses return false.
func (wr *World) Pick(ray math32.Ray, maxDist float32) (Hit, bool) {
	ray, ok := normRay(ray)
	if !ok {
		return Hit{}, false
	}
	var best Hit
	found := false
	for _, ob := range wr.candidates(ray) {
		pt, has := ob.Shape.Intersect(ray)
		if !has {
			continue
		}
		d := pt.DistanceTo(ray.Origin)
		if maxDist > 0 && d > maxDist {
			continue
		}
		if !found || d < best.Dist {
			best = Hit{Item: ob.Item, Point: pt, Dist: d}
			found = true
		}
	}
	return best, found
}

// IntersectItem intersects the ray with the collision object of one
// item only, ignoring anything in front of it.
func (wr *World) IntersectItem(item int64, ray math32.Ray) (math32.Vector3, bool) {
	ob := wr.Object(item)
	if ob == nil {
		return math32.Vector3{}, false
	}
	ray, ok := normRay(ray)
	if !ok {
		return math32.Vector3{}, false
	}
	return ob.Shape.Intersect(ray)
}

// PickBatch picks each of the rays and returns the de-duplicated ids
// of the items hit, in the order first hit, excluding [Sphere] shapes,
// which are backgrounds.
func (wr *World) PickBatch(rays []math32.Ray) []int64 {
	var ids []int64
	seen := make(map[int64]bool)
	for _, ray := range rays {
		ht, ok := wr.Pick(ray, 0)
		if !ok || seen[ht.Item] {
			continue
		}
		seen[ht.Item] = true
		if _, bg := wr.Object(ht.Item).Shape.(*Sphere); bg {
			continue
		}
		ids = append(ids, ht.Item)
	}
	return ids
}
