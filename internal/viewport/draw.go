package viewport

import (
	"math"

	"sceneeditor/internal/editor"
	"sceneeditor/internal/gizmo"
	"sceneeditor/internal/mirror"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

const gizmoThickness float32 = 0.06

var axisColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// Draw renders the grid, every node, a yellow box around each selected
// node and the gizmo. Call it between BeginMode3D and EndMode3D.
func Draw(m *mirror.Mirror, selected []uuid.UUID, ov Overlay) {
	rl.DrawGrid(GridSlices, GridSpacing)

	m.Each(func(_ uuid.UUID, node mirror.Node) {
		if n, ok := node.(*Node); ok {
			n.Draw()
		}
	})

	for _, id := range selected {
		node, ok := m.Node(id)
		if !ok {
			continue
		}
		if n, ok := node.(*Node); ok {
			rl.DrawBoundingBox(n.Bounds(), rl.Yellow)
		}
	}

	if ov.Visible {
		// gizmo always draws on top
		rl.DrawRenderBatchActive()
		rl.DisableDepthTest()
		drawGizmo(ov)
		rl.DrawRenderBatchActive()
		rl.EnableDepthTest()
	}
}

func drawGizmo(ov Overlay) {
	center := Vec(ov.Center)

	for i, axis := range gizmo.Axes {
		color := axisColors[i]
		if ov.HotAxis == i {
			color = rl.Yellow
		}

		end := rl.Vector3Add(center, rl.Vector3Scale(Vec(axis), gizmo.Length))

		switch ov.Mode {
		case editor.ModeTranslate:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			tip := rl.Vector3{X: gizmo.TipSize, Y: gizmo.TipSize, Z: gizmo.TipSize}
			rl.DrawCubeV(end, tip, color)
		case editor.ModeRotate:
			drawRing(center, i, color)
		case editor.ModeScale:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			cubeSize := rl.Vector3{X: 0.25, Y: 0.25, Z: 0.25}
			rl.DrawCubeV(end, cubeSize, color)
			rl.DrawCubeWiresV(end, cubeSize, color)
		}
	}
}

// drawRing draws the rotation ring around axis i as short cylinders.
func drawRing(center rl.Vector3, i int, color rl.Color) {
	const segments = 16
	radius := gizmo.RingRadius

	point := func(t float64) rl.Vector3 {
		c := radius * float32(math.Cos(t))
		s := radius * float32(math.Sin(t))
		switch i {
		case 0:
			return rl.Vector3{X: center.X, Y: center.Y + c, Z: center.Z + s}
		case 1:
			return rl.Vector3{X: center.X + c, Y: center.Y, Z: center.Z + s}
		default:
			return rl.Vector3{X: center.X + c, Y: center.Y + s, Z: center.Z}
		}
	}

	for s := range segments {
		t0 := float64(s) / segments * math.Pi * 2
		t1 := float64(s+1) / segments * math.Pi * 2
		rl.DrawCylinderEx(point(t0), point(t1), gizmoThickness*0.7, gizmoThickness*0.7, 6, color)
	}
}
