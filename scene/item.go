// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/spheremap/pick"
)

// Item is a [Node], [Socket] or [Edge] owned by a [Sphere].
// Items are Constructing during their constructor, Active while
// they are in their sphere, and Removed after that, for good.
type Item interface {
	pick.Pickable

	// AsItemBase returns the common item fields.
	AsItemBase() *ItemBase

	// Kind returns the kind of item.
	Kind() Kinds

	// Pos returns the current world position of the item.
	Pos() math32.Vector3

	// update recomputes derived state and resets the
	// collision object of the item.
	update()
}

// ItemBase has the fields common to all items.
type ItemBase struct {

	// ID is the stable id of the item, unique within its universe.
	ID int64

	sphere  *Sphere
	removed bool
}

func (ib *ItemBase) AsItemBase() *ItemBase {
	return ib
}

// PickID returns the id of the item in the collision world.
func (ib *ItemBase) PickID() int64 {
	return ib.ID
}

// Sphere returns the sphere that owns the item.
func (ib *ItemBase) Sphere() *Sphere {
	return ib.sphere
}

// IsRemoved returns whether the item has been removed from its sphere.
func (ib *ItemBase) IsRemoved() bool {
	return ib.removed
}

// settings returns the settings of the universe of the item.
func (ib *ItemBase) settings() *Settings {
	return &ib.sphere.Universe.Settings
}
