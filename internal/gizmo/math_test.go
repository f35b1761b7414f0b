package gizmo

import (
	"math"
	"testing"

	"sceneeditor/internal/editor"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClosestPointBetweenRays(t *testing.T) {
	t1, t2, dist := ClosestPointBetweenRays(
		mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1},
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0},
	)
	assert.InDelta(t, 5, t1, 1e-5)
	assert.InDelta(t, 0, t2, 1e-5)
	assert.InDelta(t, 0, dist, 1e-5)

	_, _, dist = ClosestPointBetweenRays(
		mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0},
	)
	assert.Equal(t, float32(999), dist, "parallel rays never match")
}

func TestRayPlaneIntersect(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}

	pt, ok := RayPlaneIntersect(Ray{Origin: mgl32.Vec3{2, 5, 1}, Direction: mgl32.Vec3{0, -1, 0}}, mgl32.Vec3{}, up)
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec3{2, 0, 1}, pt)

	_, ok = RayPlaneIntersect(Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, 1, 0}}, mgl32.Vec3{}, up)
	assert.False(t, ok, "plane behind the ray")

	_, ok = RayPlaneIntersect(Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{1, 0, 0}}, mgl32.Vec3{}, up)
	assert.False(t, ok, "parallel ray")
}

func TestPickAxis(t *testing.T) {
	center := mgl32.Vec3{}
	forward := mgl32.Vec3{0, 0, 1}

	tests := []struct {
		name string
		ray  Ray
		mode editor.TransformMode
		want int
	}{
		{"x handle", Ray{mgl32.Vec3{1, 0, -5}, forward}, editor.ModeTranslate, 0},
		{"y handle", Ray{mgl32.Vec3{0, 1, -5}, forward}, editor.ModeScale, 1},
		{"miss", Ray{mgl32.Vec3{5, 5, -5}, forward}, editor.ModeTranslate, -1},
		{"past the tip", Ray{mgl32.Vec3{Length + 1, 0, -5}, forward}, editor.ModeTranslate, -1},
		{"y ring", Ray{mgl32.Vec3{RingRadius, 5, 0}, mgl32.Vec3{0, -1, 0}}, editor.ModeRotate, 1},
		{"inside the rings", Ray{mgl32.Vec3{0.1, 5, 0.1}, mgl32.Vec3{0, -1, 0}}, editor.ModeRotate, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickAxis(tt.ray, center, tt.mode))
		})
	}
}

func TestDragPlaneNormal(t *testing.T) {
	n := DragPlaneNormal(Axes[0], mgl32.Vec3{}, mgl32.Vec3{0, 0, -10})
	assert.InDelta(t, 0, n.Dot(Axes[0]), 1e-5, "the plane contains the axis")
	assert.InDelta(t, 1, math.Abs(float64(n[2])), 1e-5, "and faces the camera")
}

func TestApplyDrag(t *testing.T) {
	start := Transform{
		Position: mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.Vec3{},
		Scale:    mgl32.Vec3{2, 2, 2},
	}

	got := ApplyDrag(editor.ModeTranslate, 0, 1.5, start)
	assert.Equal(t, mgl32.Vec3{2.5, 1, 1}, got.Position)
	assert.Equal(t, start.Scale, got.Scale)

	got = ApplyDrag(editor.ModeRotate, 1, 2, start)
	assert.InDelta(t, math.Pi/2, got.Rotation[1], 1e-5)
	assert.Equal(t, start.Position, got.Position)

	got = ApplyDrag(editor.ModeScale, 2, 1, start)
	assert.Equal(t, mgl32.Vec3{2, 2, 3}, got.Scale)

	got = ApplyDrag(editor.ModeScale, 0, -10, start)
	assert.InDelta(t, 0.2, got.Scale[0], 1e-5, "factor floors at MinScaleFactor")
}
