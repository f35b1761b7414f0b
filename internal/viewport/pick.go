package viewport

import (
	"slices"

	"sceneeditor/internal/editor"
	"sceneeditor/internal/gizmo"
	"sceneeditor/internal/mirror"
	"sceneeditor/internal/picker"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

const (
	// GridSlices is the number of cells along each side of the ground grid.
	GridSlices = 20
	// GridSpacing is the cell size of the ground grid.
	GridSpacing float32 = 1
)

// Overlay describes the gizmo drawn over the primary selection.
type Overlay struct {
	Visible bool
	Center  mgl32.Vec3
	Mode    editor.TransformMode
	HotAxis int // hovered or dragged handle, -1 for none
}

// Ray converts a raylib ray for the gizmo math.
func Ray(r rl.Ray) gizmo.Ray {
	return gizmo.Ray{Origin: FromVec(r.Position), Direction: FromVec(r.Direction)}
}

// Pick intersects ray with every node, the ground grid and the gizmo and
// returns the hits nearest first. The gizmo draws on top of everything so
// its hit is always in front.
func Pick(ray rl.Ray, m *mirror.Mirror, ov Overlay) []picker.Hit {
	var hits []picker.Hit

	m.Each(func(_ uuid.UUID, node mirror.Node) {
		n, ok := node.(*Node)
		if !ok {
			return
		}
		if col := rl.GetRayCollisionBox(ray, n.Bounds()); col.Hit {
			hits = append(hits, picker.Hit{Node: node, Kind: picker.HitObject, Distance: col.Distance})
		}
	})

	if d, ok := hitGrid(ray); ok {
		hits = append(hits, picker.Hit{Kind: picker.HitBackground, Distance: d})
	}

	if ov.Visible && gizmo.PickAxis(Ray(ray), ov.Center, ov.Mode) >= 0 {
		hits = append(hits, picker.Hit{Kind: picker.HitHelper, Distance: 0})
	}

	slices.SortStableFunc(hits, func(a, b picker.Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

func hitGrid(ray rl.Ray) (float32, bool) {
	pt, ok := gizmo.RayPlaneIntersect(Ray(ray), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if !ok {
		return 0, false
	}
	half := float32(GridSlices) * GridSpacing / 2
	if pt[0] < -half || pt[0] > half || pt[2] < -half || pt[2] > half {
		return 0, false
	}
	return pt.Sub(FromVec(ray.Position)).Len(), true
}
