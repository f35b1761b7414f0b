package editor

import (
	"slices"

	"github.com/google/uuid"
)

// SelectObjects replaces the selection. Nil or empty clears it. Ids that
// are not in the document are dropped and repeats collapse to their first
// occurrence. History is never touched.
func (e *Editor) SelectObjects(ids []uuid.UUID) {
	next := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !e.objects.Contains(id) || slices.Contains(next, id) {
			continue
		}
		next = append(next, id)
	}
	e.selected = next
	e.emit(ChangeSelect, uuid.Nil, false)
}

// ClearSelection is SelectObjects(nil).
func (e *Editor) ClearSelection() {
	e.SelectObjects(nil)
}

// ToggleSelection adds id if it is live and unselected, or removes it if
// selected.
func (e *Editor) ToggleSelection(id uuid.UUID) {
	if e.IsSelected(id) {
		e.deselect(id)
	} else if e.objects.Contains(id) {
		e.selected = append(e.selected, id)
	} else {
		e.log.Debug("toggle selection: not found", "id", id)
		return
	}
	e.emit(ChangeSelect, id, false)
}

// SetTransformMode switches the gizmo tool. Invalid modes are ignored.
func (e *Editor) SetTransformMode(m TransformMode) {
	if !m.Valid() {
		e.log.Debug("ignoring transform mode", "mode", int(m))
		return
	}
	e.transformMode = m
	e.emit(ChangeMode, uuid.Nil, false)
}

func (e *Editor) deselect(id uuid.UUID) {
	e.selected = slices.DeleteFunc(e.selected, func(s uuid.UUID) bool { return s == id })
}

func (e *Editor) pruneSelection() {
	e.selected = slices.DeleteFunc(e.selected, func(s uuid.UUID) bool { return !e.objects.Contains(s) })
}
