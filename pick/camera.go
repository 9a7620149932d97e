// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera is a perspective camera used to turn screen points into
// world rays. It looks down its local -Z axis.
type Camera struct {

	// Pos is the world position of the camera.
	Pos math32.Vector3

	// Quat is the camera rotation.
	Quat math32.Quat

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Size is the size of the viewport in pixels.
	Size image.Point
}

// NewCamera returns a camera at pos looking at target with +Y up,
// for a viewport of the given size.
func NewCamera(pos, target math32.Vector3, size image.Point) *Camera {
	cm := &Camera{Pos: pos, FOV: 30, Size: size}
	cm.LookAt(target, math32.Vec3(0, 1, 0))
	return cm
}

// LookAt points the camera at the given target using the given up direction.
func (cm *Camera) LookAt(target, up math32.Vector3) {
	dir := target.Sub(cm.Pos)
	if dir.Length() < 1.0e-6 {
		return
	}
	if math32.Abs(dir.Normal().Dot(up.Normal())) > 0.999 {
		up = math32.Vec3(0, 0, -1)
	}
	cm.Quat.SetFromRotationMatrix(math32.NewLookAt(cm.Pos, target, up))
}

// Ray returns the world ray from the camera through the given pixel.
func (cm *Camera) Ray(pt image.Point) math32.Ray {
	w := float32(max(cm.Size.X, 1))
	h := float32(max(cm.Size.Y, 1))
	ndcX := 2*(float32(pt.X)+0.5)/w - 1
	ndcY := 1 - 2*(float32(pt.Y)+0.5)/h
	th := math32.Tan(math32.DegToRad(cm.FOV) / 2)
	dir := math32.Vec3(ndcX*th*(w/h), ndcY*th, -1).MulQuat(cm.Quat).Normal()
	return math32.Ray{Origin: cm.Pos, Dir: dir}
}

// RayGrid returns res x res rays evenly spread over the given screen
// rectangle, corners included, for rubber-band selection. The rectangle
// is canonicalized first, so it can be given in any drag direction.
func (cm *Camera) RayGrid(r image.Rectangle, res int) []math32.Ray {
	r = r.Canon()
	res = max(res, 2)
	rays := make([]math32.Ray, 0, res*res)
	for yi := range res {
		y := r.Min.Y + (r.Dy()*yi)/(res-1)
		for xi := range res {
			x := r.Min.X + (r.Dx()*xi)/(res-1)
			rays = append(rays, cm.Ray(image.Pt(x, y)))
		}
	}
	return rays
}

// Project returns the pixel that the world point projects to,
// and false if the point is not in front of the camera.
func (cm *Camera) Project(p math32.Vector3) (image.Point, bool) {
	local := p.Sub(cm.Pos).MulQuat(cm.Quat.Inverse())
	if local.Z >= 0 {
		return image.Point{}, false
	}
	w := float32(max(cm.Size.X, 1))
	h := float32(max(cm.Size.Y, 1))
	th := math32.Tan(math32.DegToRad(cm.FOV) / 2)
	ndcX := local.X / -local.Z / (th * (w / h))
	ndcY := local.Y / -local.Z / th
	x := (ndcX+1)*w/2 - 0.5
	y := (1-ndcY)*h/2 - 0.5
	return image.Pt(int(math32.Round(x)), int(math32.Round(y))), true
}
