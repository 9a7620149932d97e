// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orient converts between the offset quaternions that items
// on a sphere store, their world positions and orientations, and
// pointer collision points on the sphere surface.
//
// Every item on a sphere stores only its offset: the rotation that
// takes the [Pole] to its position in the sphere's own frame.
// Positions are always derived through [Cumulative] and [Place].
package orient

import (
	"cogentcore.org/core/math32"
	cmath "github.com/chewxy/math32"
)

// Epsilon is the length below which vectors are treated as degenerate.
const Epsilon = 1.0e-6

// Pole is the canonical unit "north pole" direction that a zero
// (identity) offset places an item at.
var Pole = math32.Vec3(0, 1, 0)

// Identity returns the identity rotation.
func Identity() math32.Quat {
	return math32.NewQuat(0, 0, 0, 1)
}

// Cumulative returns the world rotation of an item with the given offset
// on a sphere with the given orientation. The offset is applied first,
// followed by the inverse of the sphere orientation.
func Cumulative(offset, sphere math32.Quat) math32.Quat {
	inv := sphere.Inverse()
	return inv.Mul(offset)
}

// Place returns the world position of an item at the given cumulative
// rotation: the pole scaled to radius, rotated, and translated by center.
// This is the only way item positions are computed.
func Place(cumulative math32.Quat, center math32.Vector3, radius float32) math32.Vector3 {
	return Pole.MulScalar(radius).MulQuat(cumulative).Add(center)
}

// Outward returns a look-at orientation for an item at pos on a sphere
// centered at center, whose local +Z axis points away from the center.
func Outward(pos, center math32.Vector3) math32.Quat {
	q := Identity()
	dir := pos.Sub(center)
	if dir.Length() < Epsilon {
		return q
	}
	up := math32.Vec3(0, 1, 0)
	if math32.Abs(dir.Normal().Dot(up)) > 0.999 {
		up = math32.Vec3(1, 0, 0)
	}
	q.SetFromRotationMatrix(math32.NewLookAt(pos, center, up))
	return q
}

// Axis returns the local +Z axis of the given orientation, which for
// [Outward] orientations is the outward surface normal.
func Axis(q math32.Quat) math32.Vector3 {
	return math32.Vec3(0, 0, 1).MulQuat(q)
}

// GreatCircleDistance returns the shortest distance along the surface of a
// sphere of the given radius between two points on it, computed from
// their chord length.
func GreatCircleDistance(p1, p2 math32.Vector3, radius float32) float32 {
	if radius <= 0 {
		return 0
	}
	chord := p1.DistanceTo(p2)
	s := math32.Clamp(chord/(2*radius), -1, 1)
	return 2 * radius * cmath.Asin(s)
}

// RotationBetween returns the minimal rotation taking direction from
// onto direction to. Degenerate directions give the identity.
func RotationBetween(from, to math32.Vector3) math32.Quat {
	q := Identity()
	if from.Length() < Epsilon || to.Length() < Epsilon {
		return q
	}
	q.SetFromUnitVectors(from.Normal(), to.Normal())
	return q
}

// PointerToOffset returns the offset that places an item exactly at point,
// a collision point on the surface of the sphere with the given center and
// orientation. The result is the current offset turned by the minimal
// rotation from its pole direction to the point, so dragging keeps the
// item's roll continuous. A point at the center leaves the offset unchanged.
func PointerToOffset(point, center math32.Vector3, sphere, offset math32.Quat) math32.Quat {
	dir := point.Sub(center)
	if dir.Length() < Epsilon {
		return offset
	}
	local := dir.Normal().MulQuat(sphere)
	cur := Pole.MulQuat(offset)
	d := RotationBetween(cur, local)
	no := d.Mul(offset)
	no.Normalize()
	return no
}

// Delta returns the rotation that takes offset from to offset to,
// such that Apply(Delta(from, to), from) == to.
func Delta(from, to math32.Quat) math32.Quat {
	inv := from.Inverse()
	return to.Mul(inv)
}

// Apply applies the rotation delta to the given offset.
func Apply(delta, offset math32.Quat) math32.Quat {
	no := delta.Mul(offset)
	no.Normalize()
	return no
}

// RotateSphere returns the new orientation of a sphere whose world
// rotation is turned by delta. Items on it move rigidly with it.
func RotateSphere(sphere, delta math32.Quat) math32.Quat {
	inv := delta.Inverse()
	ns := sphere.Mul(inv)
	ns.Normalize()
	return ns
}

// ArcPoints returns n points evenly spaced along the great-circle arc
// from the direction of a to the direction of b, at the given radius
// around center. The arc starts and ends clip surface units away from
// each end. It returns nil when n < 2 or the clipped arc is empty.
func ArcPoints(a, b, center math32.Vector3, radius float32, n int, clip float32) []math32.Vector3 {
	da := a.Sub(center)
	db := b.Sub(center)
	if n < 2 || radius <= 0 || da.Length() < Epsilon || db.Length() < Epsilon {
		return nil
	}
	da = da.Normal()
	db = db.Normal()
	angle := cmath.Acos(math32.Clamp(da.Dot(db), -1, 1))
	clipAngle := clip / radius
	if angle < Epsilon || 2*clipAngle >= angle {
		return nil
	}
	rot := RotationBetween(da, db)
	t0 := clipAngle / angle
	t1 := 1 - t0
	pts := make([]math32.Vector3, n)
	for i := range n {
		t := t0 + (t1-t0)*float32(i)/float32(n-1)
		q := Identity()
		q.Slerp(rot, t)
		pts[i] = da.MulQuat(q).MulScalar(radius).Add(center)
	}
	return pts
}

// Center returns the running SLERP average of the given offsets,
// the orientation at the middle of the group. Empty input gives
// the identity.
func Center(offsets []math32.Quat) math32.Quat {
	if len(offsets) == 0 {
		return Identity()
	}
	c := offsets[0]
	for i := 1; i < len(offsets); i++ {
		c.Slerp(offsets[i], 1/float32(i+1))
	}
	c.Normalize()
	return c
}

// ToArray returns the quaternion as x, y, z, w.
func ToArray(q math32.Quat) [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// FromArray returns the normalized quaternion from x, y, z, w,
// with an all-zero array giving the identity.
func FromArray(a [4]float32) math32.Quat {
	q := math32.NewQuat(a[0], a[1], a[2], a[3])
	if q.IsNil() || q.Length() < Epsilon {
		return Identity()
	}
	q.Normalize()
	return q
}
