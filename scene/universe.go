// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene graph of a sphere map: a universe of
// spheres, each hosting nodes, their sockets, and the edges between
// them, kept positionally consistent with the collision world as items
// are created, moved, selected and removed. It also provides the pointer
// controller for selecting and dragging, and the serialized document
// format.
package scene

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/history"
	"cogentcore.org/spheremap/orient"
	"cogentcore.org/spheremap/pick"
	"github.com/google/uuid"
)

// Universe is the container of all spheres, and the owner of the
// collision world and the id space they share.
type Universe struct {

	// ID is the document id of the universe.
	ID string

	// Settings are the geometry and behavior parameters.
	Settings Settings

	// World is the collision world mirroring every pickable item.
	World *pick.World

	// Spheres are the spheres of the universe, by id, in creation order.
	Spheres *ordmap.Map[int64, *Sphere]

	// items is the universe-wide index of items by id.
	items  map[int64]Item
	lastID int64
}

// NewUniverse returns a new empty universe with default settings.
func NewUniverse() *Universe {
	u := &Universe{
		ID:      uuid.NewString(),
		World:   pick.NewWorld(),
		Spheres: ordmap.New[int64, *Sphere](),
		items:   make(map[int64]Item),
	}
	u.Settings.Defaults()
	return u
}

// hasID returns whether the id is used by a sphere or an item.
func (u *Universe) hasID(id int64) bool {
	if _, ok := u.items[id]; ok {
		return true
	}
	_, ok := u.Spheres.ValueByKeyTry(id)
	return ok
}

// newID returns a new unused id.
func (u *Universe) newID() int64 {
	u.lastID++
	for u.hasID(u.lastID) {
		u.lastID++
	}
	return u.lastID
}

// claimID keeps new ids above an id that was given from outside.
func (u *Universe) claimID(id int64) {
	u.lastID = max(u.lastID, id)
}

// register adds the item to the id index. It panics if the id is used.
func (u *Universe) register(it Item) {
	id := it.PickID()
	if u.hasID(id) {
		panic(fmt.Sprintf("scene.Universe: id %d is already in use", id))
	}
	u.items[id] = it
	u.claimID(id)
}

func (u *Universe) unregister(id int64) {
	delete(u.items, id)
}

// Item returns the item with the given id in any sphere, or nil.
func (u *Universe) Item(id int64) Item {
	return u.items[id]
}

// Sphere returns the sphere with the given id, or nil.
func (u *Universe) Sphere(id int64) *Sphere {
	sp, _ := u.Spheres.ValueByKeyTry(id)
	return sp
}

// Lookup returns the sphere with the given id, or the item with the
// given id along with its sphere. Both are nil if nothing has the id.
func (u *Universe) Lookup(id int64) (*Sphere, Item) {
	if sp := u.Sphere(id); sp != nil {
		return sp, nil
	}
	if it := u.Item(id); it != nil {
		return it.AsItemBase().sphere, it
	}
	return nil, nil
}

// NewSphere adds a new sphere with the given center and radius.
func (u *Universe) NewSphere(pos math32.Vector3, radius float32) *Sphere {
	return u.newSphere(0, pos, radius)
}

// newSphere adds a new sphere with the given id (0 for a new id).
func (u *Universe) newSphere(id int64, pos math32.Vector3, radius float32) *Sphere {
	if id == 0 {
		id = u.newID()
	}
	if u.hasID(id) {
		panic(fmt.Sprintf("scene.Universe: id %d is already in use", id))
	}
	u.claimID(id)
	sp := &Sphere{
		ID:       id,
		Universe: u,
		Pos:      pos,
		Radius:   radius,
		Quat:     orient.Identity(),
		Texture:  "sphere",
		Color:    colors.Spaced(u.Spheres.Len()),
		Items:    ordmap.New[int64, Item](),
	}
	u.Spheres.Add(id, sp)
	sp.resetPick(sp)
	sp.History = history.New(sp, u.Settings.HistoryLimit)
	sp.History.OnModified(func() { sp.Modified = true })
	errors.Log(sp.History.Store("sphere created", false))
	return sp
}

// RemoveSphere removes the sphere with all of its items and their
// collision objects.
func (u *Universe) RemoveSphere(sp *Sphere) {
	if sp.removed || sp.Universe != u {
		return
	}
	sp.removeItems(sp.Items.Values())
	if u.World.Has(sp.ID) {
		errors.Log(u.World.DeleteItem(sp.ID))
	}
	u.Spheres.DeleteKey(sp.ID)
	sp.Selected = nil
	sp.Deselected = nil
	sp.removed = true
}

// Pick returns the closest sphere or item hit by the ray, along with
// the sphere it belongs to. The item is nil when the hit is a sphere
// background.
func (u *Universe) Pick(ray math32.Ray) (pick.Hit, *Sphere, Item, bool) {
	ht, ok := u.World.Pick(ray, 0)
	if !ok {
		return ht, nil, nil, false
	}
	sp, it := u.Lookup(ht.Item)
	if sp == nil {
		return ht, nil, nil, false
	}
	return ht, sp, it, true
}
