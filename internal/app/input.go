package app

import (
	"sceneeditor/internal/gizmo"
	"sceneeditor/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

// textFocused reports whether a panel field owns the keyboard.
func (a *App) textFocused() bool {
	return a.editingName || a.typingField != nil
}

func (a *App) handleHotkeys() {
	// no history operations in the middle of a gesture
	if a.textFocused() || a.cam.Flying() || a.drag != nil || a.scrub != nil {
		if a.drag != nil && rl.IsKeyPressed(rl.KeyEscape) {
			a.drag.Cancel()
			a.drag = nil
		}
		return
	}

	ctrl, shift := ctrlDown(), shiftDown()
	for _, key := range hotkeyKeys {
		if !rl.IsKeyPressed(key) {
			continue
		}
		cmd := commandFor(ctrl, shift, key)
		if cmd == CmdFocus {
			a.focusSelection()
			continue
		}
		execute(a.ed, cmd)
	}
}

func (a *App) focusSelection() {
	id, ok := gizmo.Target(a.ed, a.mirror)
	if !ok {
		return
	}
	node, _ := a.mirror.Node(id)
	n, ok := node.(*viewport.Node)
	if !ok {
		return
	}
	b := n.Bounds()
	size := rl.Vector3Subtract(b.Max, b.Min)
	center := rl.Vector3Scale(rl.Vector3Add(b.Min, b.Max), 0.5)
	a.cam.Focus(center, max(size.X, size.Y, size.Z)/2)
}

// mouseInPanel reports whether the pointer is over UI rather than the 3D view.
func (a *App) mouseInPanel() bool {
	m := rl.GetMousePosition()
	return a.inPanel(m.X, m.Y, float32(rl.GetScreenWidth()))
}

// inPanel reports whether screen point x, y is covered by a panel. The
// properties strip only counts while the panel is drawn.
func (a *App) inPanel(x, y, screenW float32) bool {
	if y <= float32(topBarH) || x <= float32(outlinerW) {
		return true
	}
	_, ok := primary(a.ed)
	return ok && x >= screenW-float32(propertiesW)
}

func (a *App) updateViewport(dt float32) {
	a.cam.Update(dt)

	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), a.cam.Raylib())

	if a.drag != nil {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			a.drag.Update(viewport.Ray(ray))
		} else {
			a.drag.End()
			a.drag = nil
		}
		return
	}

	ov := a.overlay()
	a.hotAxis = -1
	if ov.Visible && !a.mouseInPanel() {
		a.hotAxis = gizmo.PickAxis(viewport.Ray(ray), ov.Center, ov.Mode)
	}

	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) || a.mouseInPanel() || a.cam.Flying() {
		return
	}

	if a.hotAxis >= 0 {
		id, _ := gizmo.Target(a.ed, a.mirror)
		a.drag, _ = gizmo.BeginAxisDrag(a.ed, id, a.hotAxis, viewport.Ray(ray), viewport.FromVec(a.cam.Position))
		return
	}

	hits := viewport.Pick(ray, a.mirror, ov)
	a.picker.PointerDown(hits, ctrlDown())
}
