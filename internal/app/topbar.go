package app

import (
	"fmt"

	"sceneeditor/internal/editor"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var modeButtons = [...]struct {
	label string
	mode  editor.TransformMode
	cmd   Command
}{
	{"[W] Move", editor.ModeTranslate, CmdTranslate},
	{"[E] Rotate", editor.ModeRotate, CmdRotate},
	{"[R] Scale", editor.ModeScale, CmdScale},
}

var addButtons = [...]struct {
	label string
	cmd   Command
}{
	{"+ Cube", CmdAddCube},
	{"+ Sphere", CmdAddSphere},
	{"+ Mushroom", CmdAddMushroom},
}

func (a *App) drawTopBar() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenW, topBarH, colorBgDark)
	rl.DrawRectangle(0, topBarH-1, screenW, 1, colorBorder)

	drawText("EDITOR", 12, 9, 20, colorAccent)

	cmd := CmdNone
	x := int32(110)
	for _, b := range addButtons {
		if gui.Button(rect(x, 6, 90, 24), b.label) {
			cmd = b.cmd
		}
		x += 96
	}

	x += 12
	if a.ed.CanUndo() {
		if gui.Button(rect(x, 6, 60, 24), "Undo") {
			cmd = CmdUndo
		}
	} else {
		drawText("Undo", x+14, 11, 15, colorTextMuted)
	}
	x += 66
	if a.ed.CanRedo() {
		if gui.Button(rect(x, 6, 60, 24), "Redo") {
			cmd = CmdRedo
		}
	} else {
		drawText("Redo", x+14, 11, 15, colorTextMuted)
	}
	x += 78

	// the mode toolbar only matters with something to transform
	if len(a.ed.SelectedIDs()) > 0 {
		for _, b := range modeButtons {
			color := colorTextMuted
			if a.ed.TransformMode() == b.mode {
				color = colorAccentLight
			}
			r := rect(x, 6, 96, 24)
			if hovered(r) {
				rl.DrawRectangleRounded(r, 0.5, 6, colorBgHover)
				if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
					cmd = b.cmd
				}
			}
			drawText(b.label, x+8, 11, 15, color)
			x += 100
		}
	}

	past, future := a.ed.HistoryLen()
	info := fmt.Sprintf("%d objects  |  history %d/%d", a.ed.Len(), past, future)
	drawText(info, screenW-rl.MeasureText(info, 15)-12, 11, 15, colorTextMuted)

	if a.drag == nil && a.scrub == nil {
		execute(a.ed, cmd)
	}

	now := a.now()
	if a.status.visible(now) {
		color := colorOK
		if a.status.err {
			color = colorError
		}
		w := rl.MeasureText(a.status.msg, 16)
		drawText(a.status.msg, (screenW-w)/2, topBarH+10, 16, color)
	}
}
