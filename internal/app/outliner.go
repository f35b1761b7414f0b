package app

import (
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// typeBadge is the short tag drawn before each outliner row.
func typeBadge(t engine.ObjectType) (string, rl.Color) {
	switch t {
	case engine.TypeCube:
		return "BOX", rl.NewColor(99, 102, 241, 255)
	case engine.TypeSphere:
		return "SPH", rl.NewColor(236, 72, 153, 255)
	case engine.TypeMushroom:
		return "MSH", rl.NewColor(250, 204, 21, 255)
	}
	return "?", colorTextMuted
}

// rowLabel is the object name, or its type when unnamed.
func rowLabel(obj engine.SceneObject) string {
	if obj.Name != "" {
		return obj.Name
	}
	return obj.Type.String()
}

// rowHint is drawn after the label, for objects the viewport cannot show.
func (a *App) rowHint(id uuid.UUID) string {
	if a.mirror.Failed(id) {
		return "no visual"
	}
	return ""
}

// drawOutliner draws the object list on the left. Click selects, ctrl/cmd
// click toggles.
func (a *App) drawOutliner() {
	panelY := topBarH
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(0, panelY, outlinerW, panelH, colorBgPanel)
	rl.DrawRectangle(outlinerW-2, panelY, 2, panelH, colorBorder)
	drawText("SCENE OBJECTS", 12, panelY+10, 14, colorTextMuted)

	listY := panelY + 32
	listH := panelH - 32
	objs := a.ed.Objects()

	panel := rect(0, listY, outlinerW, listH)
	if hovered(panel) && !a.cam.Flying() {
		a.outlinerScroll -= int32(rl.GetMouseWheelMove() * 20)
	}
	maxScroll := max(int32(len(objs))*rowH-listH, 0)
	a.outlinerScroll = min(max(a.outlinerScroll, 0), maxScroll)

	if len(objs) == 0 {
		drawText("Empty Scene", 12, listY+8, 14, colorTextMuted)
		return
	}

	clicked := uuid.Nil
	rl.BeginScissorMode(0, listY, outlinerW, listH)
	for i, obj := range objs {
		y := listY + int32(i)*rowH - a.outlinerScroll
		if y+rowH < listY || y > listY+listH {
			continue
		}

		row := rect(0, y, outlinerW-2, rowH)
		isHovered := hovered(row) && hovered(panel)
		selected := a.ed.IsSelected(obj.ID)
		switch {
		case selected:
			rl.DrawRectangleRec(row, colorSelection)
			rl.DrawRectangle(0, y, 3, rowH, colorAccent)
		case isHovered:
			rl.DrawRectangleRec(row, colorBgHover)
		}

		badge, badgeColor := typeBadge(obj.Type)
		drawText(badge, 12, y+5, 12, badgeColor)

		txtColor := colorTextSecondary
		if selected {
			txtColor = colorTextPrimary
		}
		drawText(rowLabel(obj), 48, y+4, 15, txtColor)
		if hint := a.rowHint(obj.ID); hint != "" {
			drawText(hint, outlinerW-rl.MeasureText(hint, 12)-10, y+6, 12, colorTextMuted)
		}

		if isHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			clicked = obj.ID
		}
	}
	rl.EndScissorMode()

	if clicked != uuid.Nil && a.drag == nil {
		if ctrlDown() {
			a.ed.ToggleSelection(clicked)
		} else {
			a.ed.SelectObjects([]uuid.UUID{clicked})
		}
	}
}
