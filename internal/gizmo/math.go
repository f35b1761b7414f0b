package gizmo

import (
	"math"

	"sceneeditor/internal/editor"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Length is the world-space length of each gizmo axis.
	Length float32 = 2.0
	// TipSize is the edge of the cube drawn at an axis end.
	TipSize float32 = 0.2
	// HitDist is how close a ray must pass to an axis to grab it.
	HitDist float32 = 0.3
	// RingHitDist is the more forgiving tolerance for rotation rings.
	RingHitDist float32 = 0.4
	// RingRadius is the radius of the rotation rings.
	RingRadius = Length * 0.8

	// RadiansPerUnit maps drag distance to rotation.
	RadiansPerUnit float32 = math.Pi / 4
	// MinScaleFactor floors the scale multiplier during a drag.
	MinScaleFactor float32 = 0.1
)

// Axes are the X, Y and Z handles in that order.
var Axes = [3]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Ray is an origin and a direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// ClosestPointBetweenRays returns the parameters of the closest points on
// a+u*t1 and b+v*t2 and their distance. Parallel rays report a huge distance.
func ClosestPointBetweenRays(a, u, b, v mgl32.Vec3) (t1, t2, dist float32) {
	w := a.Sub(b)
	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	uw := u.Dot(w)
	vw := v.Dot(w)

	denom := uu*vv - uv*uv
	if denom < 1e-6 {
		return 0, 0, 999
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := a.Add(u.Mul(t1))
	p2 := b.Add(v.Mul(t2))
	dist = p1.Sub(p2).Len()
	return
}

// RayPlaneIntersect returns where a ray hits a plane given by a point and
// a normal. Hits behind the origin do not count.
func RayPlaneIntersect(r Ray, planePoint, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := r.Direction.Dot(planeNormal)
	if math.Abs(float64(denom)) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := planePoint.Sub(r.Origin).Dot(planeNormal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.Origin.Add(r.Direction.Mul(t)), true
}

// PickAxis returns the index of the handle under the ray, or -1.
func PickAxis(r Ray, center mgl32.Vec3, mode editor.TransformMode) int {
	bestDist := float32(999.0)
	bestAxis := -1

	if mode == editor.ModeRotate {
		for i, normal := range Axes {
			pt, ok := RayPlaneIntersect(r, center, normal)
			if !ok {
				continue
			}
			fromRing := float32(math.Abs(float64(pt.Sub(center).Len() - RingRadius)))
			if fromRing < RingHitDist && fromRing < bestDist {
				bestDist = fromRing
				bestAxis = i
			}
		}
		return bestAxis
	}

	for i, axis := range Axes {
		_, t2, dist := ClosestPointBetweenRays(r.Origin, r.Direction, center, axis)
		if t2 > 0 && t2 < Length && dist < HitDist && dist < bestDist {
			bestDist = dist
			bestAxis = i
		}
	}
	return bestAxis
}

// DragPlaneNormal builds the plane a drag along axis is measured in: it
// contains the axis and faces the camera as much as possible.
func DragPlaneNormal(axis, center, cameraPos mgl32.Vec3) mgl32.Vec3 {
	viewDir := center.Sub(cameraPos).Normalize()
	cross := viewDir.Cross(axis)
	return axis.Cross(cross).Normalize()
}

// Transform is the position/rotation/scale triple a drag edits.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// ApplyDrag returns start moved by delta along axis under mode.
func ApplyDrag(mode editor.TransformMode, axis int, delta float32, start Transform) Transform {
	out := start
	switch mode {
	case editor.ModeTranslate:
		out.Position = start.Position.Add(Axes[axis].Mul(delta))
	case editor.ModeRotate:
		out.Rotation[axis] = start.Rotation[axis] + delta*RadiansPerUnit
	case editor.ModeScale:
		factor := 1 + delta*0.5
		if factor < MinScaleFactor {
			factor = MinScaleFactor
		}
		out.Scale[axis] = start.Scale[axis] * factor
	}
	return out
}
