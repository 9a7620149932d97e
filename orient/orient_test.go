// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orient

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-4)

func tolAssertEqualVector(t *testing.T, vt, va math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol)
	tolassert.EqualTol(t, vt.Z, va.Z, standardTol)
}

func TestPlaceIdempotent(t *testing.T) {
	ctr := math32.Vec3(1, 2, 3)
	qo := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 1).Normal(), 0.7)
	qs := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 1.1)
	p1 := Place(Cumulative(qo, qs), ctr, 2)
	p2 := Place(Cumulative(qo, qs), ctr, 2)
	assert.Equal(t, p1, p2)
	tolassert.EqualTol(t, 2, p1.DistanceTo(ctr), standardTol)

	tolAssertEqualVector(t, math32.Vec3(0, 1, 0), Place(Identity(), math32.Vec3(0, 0, 0), 1))
}

func TestRotationRoundTrip(t *testing.T) {
	ctr := math32.Vec3(0, 0, 0)
	qs := Identity()
	qo := Identity()
	target := math32.Vec3(1, 1, 0).Normal()
	qo = PointerToOffset(target, ctr, qs, qo)
	tolAssertEqualVector(t, target, Place(Cumulative(qo, qs), ctr, 1))

	r := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(40))
	qs = RotateSphere(qs, r)
	// items move rigidly with the sphere
	tolAssertEqualVector(t, target.MulQuat(r), Place(Cumulative(qo, qs), ctr, 1))

	rinv := r.Inverse()
	qs = RotateSphere(qs, rinv)
	tolAssertEqualVector(t, target, Place(Cumulative(qo, qs), ctr, 1))
}

func TestPointerToOffset(t *testing.T) {
	ctr := math32.Vec3(0.5, -1, 2)
	qs := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), 0.9)
	qo := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), 0.3)
	pt := math32.Vec3(0, 0, 3).Add(ctr)
	no := PointerToOffset(pt, ctr, qs, qo)
	tolAssertEqualVector(t, pt, Place(Cumulative(no, qs), ctr, 3))

	// re-applying to the same point is a no-op
	again := PointerToOffset(pt, ctr, qs, no)
	tolAssertEqualVector(t, Place(Cumulative(no, qs), ctr, 3), Place(Cumulative(again, qs), ctr, 3))

	// degenerate point leaves the offset alone
	assert.Equal(t, qo, PointerToOffset(ctr, ctr, qs, qo))
}

func TestGreatCircleDistance(t *testing.T) {
	p1 := math32.Vec3(0, 1, 0)
	p2 := math32.Vec3(1, 0, 0)
	assert.Equal(t, GreatCircleDistance(p1, p2, 1), GreatCircleDistance(p2, p1, 1))
	assert.Equal(t, float32(0), GreatCircleDistance(p1, p1, 1))
	tolassert.EqualTol(t, math32.Pi/2, GreatCircleDistance(p1, p2, 1), standardTol)
	tolassert.EqualTol(t, math32.Pi, GreatCircleDistance(p1, p1.Negate(), 1), 1.0e-3)
	assert.Equal(t, float32(0), GreatCircleDistance(p1, p2, 0))
}

func TestScenarioQuarterTurn(t *testing.T) {
	ctr := math32.Vec3(0, 0, 0)
	qs := Identity()
	a := Place(Cumulative(Identity(), qs), ctr, 1)
	// rotation about the pole axis would leave the pole fixed, so the
	// quarter turn is about Z
	qb := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/2)
	b := Place(Cumulative(qb, qs), ctr, 1)
	tolassert.EqualTol(t, 1.5708, GreatCircleDistance(a, b, 1), standardTol)
}

func TestOutward(t *testing.T) {
	ctr := math32.Vec3(1, 1, 1)
	for _, dir := range []math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, -1, 0), math32.Vec3(1, 2, -3).Normal()} {
		q := Outward(ctr.Add(dir.MulScalar(2)), ctr)
		tolAssertEqualVector(t, dir, Axis(q))
	}
	assert.Equal(t, Identity(), Outward(ctr, ctr))
}

func TestArcPoints(t *testing.T) {
	ctr := math32.Vec3(0, 0, 0)
	a := math32.Vec3(0, 1, 0)
	b := math32.Vec3(1, 0, 0)
	pts := ArcPoints(a, b, ctr, 1, 10, 0.1)
	assert.Len(t, pts, 10)
	for _, p := range pts {
		tolassert.EqualTol(t, 1, p.Length(), standardTol)
	}
	tolassert.EqualTol(t, 0.1, GreatCircleDistance(a, pts[0], 1), standardTol)
	tolassert.EqualTol(t, 0.1, GreatCircleDistance(b, pts[9], 1), standardTol)

	assert.Nil(t, ArcPoints(a, b, ctr, 1, 1, 0.1))
	assert.Nil(t, ArcPoints(a, a, ctr, 1, 10, 0.1))
	// clip regions overlap
	assert.Nil(t, ArcPoints(a, b, ctr, 1, 10, 1))
}

func TestCenter(t *testing.T) {
	qa := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), 0.4)
	qb := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), -0.4)
	c := Center([]math32.Quat{qa, qb})
	tolAssertEqualVector(t, Pole, Place(c, math32.Vec3(0, 0, 0), 1))
	assert.Equal(t, Identity(), Center(nil))
}

func TestDeltaApply(t *testing.T) {
	from := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), 0.2)
	to := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 1).Normal(), 1.3)
	got := Apply(Delta(from, to), from)
	tolAssertEqualVector(t, Place(to, math32.Vector3{}, 1), Place(got, math32.Vector3{}, 1))
}

func TestArray(t *testing.T) {
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 0.5)
	a := ToArray(q)
	back := FromArray(a)
	tolassert.EqualTol(t, q.W, back.W, standardTol)
	tolassert.EqualTol(t, q.Y, back.Y, standardTol)
	assert.Equal(t, Identity(), FromArray([4]float32{}))
}
