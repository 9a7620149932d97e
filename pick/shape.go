// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"errors"

	"cogentcore.org/core/math32"
)

// Shape is a simplified collision shape in world coordinates.
type Shape interface {

	// BBox returns the world bounding box used for the broad phase.
	BBox() math32.Box3

	// Intersect returns the closest point in front of the ray origin
	// where the ray hits the shape, and false if it does not.
	Intersect(ray math32.Ray) (math32.Vector3, bool)
}

// ErrDegenerate is returned when a shape cannot be built from the
// given geometry.
var ErrDegenerate = errors.New("pick: degenerate shape geometry")

// Sphere is a solid sphere shape, used for sphere backgrounds.
type Sphere struct {
	Center math32.Vector3
	Radius float32
}

// NewSphere returns a new sphere shape, or [ErrDegenerate]
// for a non-positive radius.
func NewSphere(center math32.Vector3, radius float32) (*Sphere, error) {
	if !(radius > 0) {
		return nil, ErrDegenerate
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

func (sp *Sphere) BBox() math32.Box3 {
	r := math32.Vector3Scalar(sp.Radius)
	return math32.Box3{Min: sp.Center.Sub(r), Max: sp.Center.Add(r)}
}

func (sp *Sphere) Intersect(ray math32.Ray) (math32.Vector3, bool) {
	return ray.IntersectSphere(math32.Sphere{Center: sp.Center, Radius: sp.Radius})
}

// Cylinder is a capped cylinder around Axis through Center, used for
// node discs. A positive InnerRadius makes it a ring (annulus), which
// is how sockets surround their node without covering it.
type Cylinder struct {
	Center math32.Vector3

	// Axis is the unit direction of the cylinder axis.
	Axis math32.Vector3

	Radius float32

	// InnerRadius is the radius of the hole through the middle, 0 for solid.
	InnerRadius float32

	// HalfHeight is half of the extent along Axis.
	HalfHeight float32
}

// NewCylinder returns a new cylinder shape, or [ErrDegenerate] if the
// axis or dimensions cannot describe one.
func NewCylinder(center, axis math32.Vector3, radius, inner, halfHeight float32) (*Cylinder, error) {
	if axis.Length() < 1.0e-6 || !(radius > 0) || !(halfHeight > 0) || inner < 0 || inner >= radius {
		return nil, ErrDegenerate
	}
	return &Cylinder{Center: center, Axis: axis.Normal(), Radius: radius, InnerRadius: inner, HalfHeight: halfHeight}, nil
}

func (cy *Cylinder) BBox() math32.Box3 {
	bb := math32.B3Empty()
	top := cy.Center.Add(cy.Axis.MulScalar(cy.HalfHeight))
	bot := cy.Center.Sub(cy.Axis.MulScalar(cy.HalfHeight))
	bb.ExpandByPoint(top)
	bb.ExpandByPoint(bot)
	bb.ExpandByScalar(cy.Radius)
	return bb
}

// radialOK returns whether the squared radial distance is on the
// solid part of the cross section.
func (cy *Cylinder) radialOK(r2 float32) bool {
	return r2 <= cy.Radius*cy.Radius && r2 >= cy.InnerRadius*cy.InnerRadius
}

func (cy *Cylinder) Intersect(ray math32.Ray) (math32.Vector3, bool) {
	if ray.Dir.Length() < 1.0e-6 {
		return math32.Vector3{}, false
	}
	d := ray.Dir.Normal()
	a := cy.Axis
	best := math32.Infinity
	try := func(t float32, check func(p math32.Vector3) bool) {
		if t < 0 || t >= best {
			return
		}
		if check(ray.Origin.Add(d.MulScalar(t))) {
			best = t
		}
	}

	// caps
	da := d.Dot(a)
	if math32.Abs(da) > 1.0e-6 {
		for _, s := range []float32{1, -1} {
			cc := cy.Center.Add(a.MulScalar(s * cy.HalfHeight))
			t := cc.Sub(ray.Origin).Dot(a) / da
			try(t, func(p math32.Vector3) bool {
				return cy.radialOK(p.Sub(cc).LengthSquared())
			})
		}
	}

	// outer and inner walls
	w := ray.Origin.Sub(cy.Center)
	dp := d.Sub(a.MulScalar(da))
	wp := w.Sub(a.MulScalar(w.Dot(a)))
	qa := dp.Dot(dp)
	if qa > 1.0e-9 {
		qb := 2 * dp.Dot(wp)
		for _, r := range []float32{cy.Radius, cy.InnerRadius} {
			if r <= 0 {
				continue
			}
			qc := wp.Dot(wp) - r*r
			disc := qb*qb - 4*qa*qc
			if disc < 0 {
				continue
			}
			sq := math32.Sqrt(disc)
			for _, t := range []float32{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
				try(t, func(p math32.Vector3) bool {
					return math32.Abs(p.Sub(cy.Center).Dot(a)) <= cy.HalfHeight
				})
			}
		}
	}
	if best == math32.Infinity {
		return math32.Vector3{}, false
	}
	return ray.Origin.Add(d.MulScalar(best)), true
}

// Mesh is a triangle mesh shape, used for edges.
type Mesh struct {
	Triangles []math32.Triangle
	bbox      math32.Box3
}

// NewMesh returns a mesh of the given triangles, or [ErrDegenerate]
// if there are none.
func NewMesh(tris []math32.Triangle) (*Mesh, error) {
	if len(tris) == 0 {
		return nil, ErrDegenerate
	}
	ms := &Mesh{Triangles: tris, bbox: math32.B3Empty()}
	for _, tr := range tris {
		ms.bbox.ExpandByPoint(tr.A)
		ms.bbox.ExpandByPoint(tr.B)
		ms.bbox.ExpandByPoint(tr.C)
	}
	return ms, nil
}

// NewRibbon returns a mesh of a flat strip of the given half width
// following the polyline pts, lying on the surface of a sphere with the
// given center so that the strip faces outward.
func NewRibbon(pts []math32.Vector3, center math32.Vector3, halfWidth float32) (*Mesh, error) {
	if len(pts) < 2 || !(halfWidth > 0) {
		return nil, ErrDegenerate
	}
	n := len(pts)
	left := make([]math32.Vector3, n)
	right := make([]math32.Vector3, n)
	for i, p := range pts {
		var tan math32.Vector3
		switch {
		case i == 0:
			tan = pts[1].Sub(p)
		case i == n-1:
			tan = p.Sub(pts[i-1])
		default:
			tan = pts[i+1].Sub(pts[i-1])
		}
		side := tan.Cross(p.Sub(center))
		if side.Length() < 1.0e-9 {
			return nil, ErrDegenerate
		}
		side = side.Normal().MulScalar(halfWidth)
		left[i] = p.Add(side)
		right[i] = p.Sub(side)
	}
	tris := make([]math32.Triangle, 0, 2*(n-1))
	for i := 0; i < n-1; i++ {
		tris = append(tris, math32.NewTriangle(left[i], right[i], right[i+1]))
		tris = append(tris, math32.NewTriangle(left[i], right[i+1], left[i+1]))
	}
	return NewMesh(tris)
}

func (ms *Mesh) BBox() math32.Box3 {
	return ms.bbox
}

func (ms *Mesh) Intersect(ray math32.Ray) (math32.Vector3, bool) {
	var best math32.Vector3
	bestDist := math32.Infinity
	for _, tr := range ms.Triangles {
		pt, ok := ray.IntersectTriangle(tr.A, tr.B, tr.C, false)
		if !ok {
			continue
		}
		if d := pt.DistanceTo(ray.Origin); d < bestDist {
			bestDist = d
			best = pt
		}
	}
	return best, bestDist < math32.Infinity
}
