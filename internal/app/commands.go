package app

import (
	"sceneeditor/internal/editor"
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Command is an editor action bound to a key or a toolbar button.
type Command int

const (
	CmdNone Command = iota
	CmdUndo
	CmdRedo
	CmdDuplicate
	CmdDelete
	CmdTranslate
	CmdRotate
	CmdScale
	CmdClearSelection
	CmdFocus
	CmdAddCube
	CmdAddSphere
	CmdAddMushroom
)

// hotkeyKeys are the keys commandFor understands.
var hotkeyKeys = []int32{
	rl.KeyZ, rl.KeyY, rl.KeyD, rl.KeyDelete, rl.KeyBackspace,
	rl.KeyW, rl.KeyE, rl.KeyR, rl.KeyEscape, rl.KeyF,
}

// commandFor maps a key press with modifiers to a command. ctrl covers
// both Control and Command.
func commandFor(ctrl, shift bool, key int32) Command {
	if ctrl {
		switch key {
		case rl.KeyZ:
			if shift {
				return CmdRedo
			}
			return CmdUndo
		case rl.KeyY:
			return CmdRedo
		case rl.KeyD:
			return CmdDuplicate
		case rl.KeyBackspace:
			return CmdDelete
		}
		return CmdNone
	}

	switch key {
	case rl.KeyDelete:
		return CmdDelete
	case rl.KeyW:
		return CmdTranslate
	case rl.KeyE:
		return CmdRotate
	case rl.KeyR:
		return CmdScale
	case rl.KeyEscape:
		return CmdClearSelection
	case rl.KeyF:
		return CmdFocus
	}
	return CmdNone
}

// execute runs cmd against the editor. Focus is handled by the caller
// since it only moves the camera.
func execute(ed *editor.Editor, cmd Command) {
	switch cmd {
	case CmdUndo:
		ed.Undo()
	case CmdRedo:
		ed.Redo()
	case CmdDuplicate:
		if id, ok := primary(ed); ok {
			ed.DuplicateObject(id)
		}
	case CmdDelete:
		for _, id := range ed.SelectedIDs() {
			ed.DeleteObject(id)
		}
	case CmdTranslate:
		ed.SetTransformMode(editor.ModeTranslate)
	case CmdRotate:
		ed.SetTransformMode(editor.ModeRotate)
	case CmdScale:
		ed.SetTransformMode(editor.ModeScale)
	case CmdClearSelection:
		ed.ClearSelection()
	case CmdAddCube:
		ed.AddObject(engine.TypeCube)
	case CmdAddSphere:
		ed.AddObject(engine.TypeSphere)
	case CmdAddMushroom:
		ed.AddObject(engine.TypeMushroom)
	}
}

// primary is the first selected id that is still in the document. After a
// redo the selection can name objects that no longer exist.
func primary(ed *editor.Editor) (uuid.UUID, bool) {
	for _, id := range ed.SelectedIDs() {
		if _, ok := ed.Object(id); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}
