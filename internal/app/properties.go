package app

import (
	"strconv"

	"sceneeditor/internal/editor"
	"sceneeditor/internal/engine"
	"sceneeditor/internal/gizmo"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

var vectorRows = [...]struct {
	label  string
	vector gizmo.Vector
}{
	{"Position", gizmo.VectorPosition},
	{"Rotation", gizmo.VectorRotation},
	{"Scale", gizmo.VectorScale},
}

var axisLabels = [3]string{"X", "Y", "Z"}

// drawProperties edits the primary selection. Nothing is drawn without one.
func (a *App) drawProperties() {
	id, ok := primary(a.ed)
	a.settleEdits(id, ok)
	if !ok {
		return
	}
	obj, _ := a.ed.Object(id)

	panelX := int32(rl.GetScreenWidth()) - propertiesW
	panelY := topBarH
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, propertiesW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	x := panelX + 14
	w := propertiesW - 28
	y := panelY + 10

	drawText("PROPERTIES", x, y, 14, colorTextMuted)
	y += 24

	drawText("Type", x, y+4, 14, colorTextMuted)
	drawText(obj.Type.String(), x+70, y+4, 15, colorTextPrimary)
	y += fieldH + 6

	y = a.drawNameField(id, obj, x, y, w)
	rl.DrawLine(x, y+2, x+w, y+2, colorSeparator)
	y += 10

	t := gizmo.TransformOf(obj)
	fieldW := (w - 70 - 8) / 3
	for _, row := range vectorRows {
		label := row.label
		if row.vector == gizmo.VectorRotation {
			label += " (deg)"
		}
		drawText(label, x, y, 14, colorTextMuted)
		y += 18
		for axis := range 3 {
			fx := x + int32(axis)*(fieldW+4)
			drawText(axisLabels[axis], fx, y+5, 12, colorTextMuted)
			f := gizmo.Field{Vector: row.vector, Axis: axis}
			a.drawScrubField(id, f, f.Get(t), fx+12, y, fieldW-12, fieldH)
		}
		y += fieldH + 8
	}

	rl.DrawLine(x, y+2, x+w, y+2, colorSeparator)
	y += 10
	y = a.drawColorField(id, obj, x, y, w)

	y += 8
	if gui.Button(rect(x, y, w/2-4, 24), "Duplicate") && a.scrub == nil {
		execute(a.ed, CmdDuplicate)
	}
	if gui.Button(rect(x+w/2+4, y, w/2-4, 24), "Delete") && a.scrub == nil {
		a.ed.DeleteObject(id)
	}
}

func (a *App) drawNameField(id uuid.UUID, obj engine.SceneObject, x, y, w int32) int32 {
	r := rect(x, y, w, 24)
	isHovered := hovered(r)

	bg := colorBgElement
	if a.editingName {
		bg = colorBgActive
	} else if isHovered {
		bg = colorBgHover
	}
	rl.DrawRectangleRounded(r, 0.2, 6, bg)

	if !a.editingName {
		drawText(rowLabel(obj), x+8, y+5, 16, colorAccentLight)
		if isHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			a.editingName = true
			a.nameID = id
			a.nameBuffer = obj.Name
		}
		return y + 28
	}

	rl.DrawRectangleRoundedLinesEx(r, 0.2, 6, 1, colorAccent)
	drawText(a.nameBuffer+"_", x+8, y+5, 16, colorTextPrimary)

	for key := rl.GetCharPressed(); key != 0; key = rl.GetCharPressed() {
		a.nameBuffer += string(rune(key))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(a.nameBuffer) > 0 {
		runes := []rune(a.nameBuffer)
		a.nameBuffer = string(runes[:len(runes)-1])
	}

	commit := rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) ||
		(rl.IsMouseButtonPressed(rl.MouseLeftButton) && !isHovered)
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		a.editingName = false
	case commit:
		a.commitName()
	}
	return y + 28
}

// settleEdits commits a pending name or number edit to the object it was
// started for once that object is no longer the primary selection.
func (a *App) settleEdits(primaryID uuid.UUID, ok bool) {
	if a.editingName && (!ok || primaryID != a.nameID) {
		a.commitName()
	}
	if a.typingField != nil && (!ok || primaryID != a.typingID) {
		a.commitTyped()
	}
}

func (a *App) commitName() {
	a.editingName = false
	obj, ok := a.ed.Object(a.nameID)
	if !ok || a.nameBuffer == obj.Name {
		return
	}
	name := a.nameBuffer
	a.ed.UpdateObject(a.nameID, editor.Patch{Name: &name}, false)
}

func (a *App) commitTyped() {
	f := *a.typingField
	a.typingField = nil
	if v, err := strconv.ParseFloat(a.typingBuffer, 32); err == nil {
		gizmo.SetField(a.ed, a.typingID, f, float32(v))
	}
}

// drawScrubField is a number that can be dragged horizontally or clicked
// to type a value. A drag is one history entry.
func (a *App) drawScrubField(id uuid.UUID, f gizmo.Field, value float32, x, y, w, h int32) {
	r := rect(x, y, w, h)
	isHovered := hovered(r)
	typing := a.typingField != nil && *a.typingField == f && a.typingID == id
	scrubbing := a.scrub != nil && a.scrub.Field == f

	bg := colorBgElement
	if typing {
		bg = colorBgActive
	} else if isHovered || scrubbing {
		bg = colorBgHover
	}
	rl.DrawRectangleRounded(r, 0.2, 4, bg)

	if typing {
		rl.DrawRectangleRoundedLinesEx(r, 0.2, 4, 1, colorAccent)
		drawText(a.typingBuffer+"_", x+4, y+5, 14, colorTextPrimary)
		a.typeNumber(isHovered)
		return
	}

	mouseX := rl.GetMousePosition().X
	switch {
	case scrubbing && rl.IsMouseButtonDown(rl.MouseLeftButton):
		a.scrub.Move(mouseX, shiftDown())
		value = a.scrub.Value()
	case scrubbing:
		if a.scrub.Clicked() {
			a.scrub.Cancel()
			a.typingField = &f
			a.typingID = id
			a.typingBuffer = strconv.FormatFloat(float64(value), 'f', 2, 32)
		} else {
			a.scrub.End()
		}
		a.scrub = nil
	case isHovered && a.scrub == nil && a.drag == nil && rl.IsMouseButtonPressed(rl.MouseLeftButton):
		a.scrub, _ = gizmo.BeginScrub(a.ed, id, f, mouseX)
	}

	if isHovered || scrubbing {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	}
	drawText(strconv.FormatFloat(float64(value), 'f', 2, 32), x+4, y+5, 14, colorTextSecondary)
}

func (a *App) typeNumber(isHovered bool) {
	for key := rl.GetCharPressed(); key != 0; key = rl.GetCharPressed() {
		ch := rune(key)
		if (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' {
			a.typingBuffer += string(ch)
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(a.typingBuffer) > 0 {
		a.typingBuffer = a.typingBuffer[:len(a.typingBuffer)-1]
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.typingField = nil
		return
	}
	clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !isHovered
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyTab) || clickedOutside {
		a.commitTyped()
	}
}

// drawColorField shows the hex value and a picker. Dragging inside the
// picker is transient; releasing commits one entry.
func (a *App) drawColorField(id uuid.UUID, obj engine.SceneObject, x, y, w int32) int32 {
	drawText("Color", x, y, 14, colorTextMuted)
	drawText(obj.Color, x+70, y, 14, colorTextSecondary)
	y += 20

	pickerR := rect(x, y, w-30, 120)
	picked := gui.ColorPicker(pickerR, "", rlColor(obj.Color))
	hex := engine.ColorHex(picked.R, picked.G, picked.B)

	if hex != obj.Color && rl.IsMouseButtonDown(rl.MouseLeftButton) && a.scrub == nil && a.drag == nil {
		if !a.pickingColor {
			a.pickingColor = true
			a.colorID = id
			a.colorStart = obj.Color
		}
		a.ed.UpdateObject(id, editor.Patch{Color: &hex}, true)
	}

	if a.pickingColor && !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		a.endColorPick()
	}
	return y + 128
}

// endColorPick commits a color drag as one entry whose undo restores the
// color from before the drag.
func (a *App) endColorPick() {
	if !a.pickingColor {
		return
	}
	a.pickingColor = false
	cur, ok := a.ed.Object(a.colorID)
	if !ok || cur.Color == a.colorStart {
		return
	}
	final, start := cur.Color, a.colorStart
	a.ed.UpdateObject(a.colorID, editor.Patch{Color: &start}, true)
	a.ed.UpdateObject(a.colorID, editor.Patch{Color: &final}, false)
}

func rlColor(hex string) rl.Color {
	r, g, b := engine.ColorRGB255(hex)
	return rl.NewColor(r, g, b, 255)
}
