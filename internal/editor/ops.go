package editor

import (
	"sceneeditor/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Patch lists the fields to merge into an object. Nil fields are left
// alone. The type of an object cannot be patched.
type Patch struct {
	Name     *string
	Position *mgl32.Vec3
	Rotation *mgl32.Vec3
	Scale    *mgl32.Vec3
	Color    *string
}

// TransformPatch builds a patch setting all three transform vectors.
func TransformPatch(pos, rot, scale mgl32.Vec3) Patch {
	return Patch{Position: &pos, Rotation: &rot, Scale: &scale}
}

// Empty reports whether the patch sets nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Position == nil && p.Rotation == nil && p.Scale == nil && p.Color == nil
}

// AddObject appends a new object of type t with default transform, color
// and name, and makes it the only selection. The naming ordinal is the
// object count after insertion, across all types. Returns uuid.Nil for an
// unknown type.
func (e *Editor) AddObject(t engine.ObjectType) uuid.UUID {
	if !t.Valid() {
		e.log.Debug("add object: unknown type", "type", int(t))
		return uuid.Nil
	}

	obj := engine.NewSceneObject(e.newID(), t, e.objects.Len()+1)

	e.checkpoint()
	e.objects.Append(obj)
	e.selected = []uuid.UUID{obj.ID}
	e.touch()

	e.emit(ChangeAdd, obj.ID, false)
	return obj.ID
}

// UpdateObject merges p into the object with the given id. A non-transient
// update checkpoints history first; a transient one (continuous drag
// feedback) does not, and the caller owes a later commit or SaveSnapshot.
// Unknown ids and patches that set nothing valid are ignored. Returns
// whether an object was updated.
func (e *Editor) UpdateObject(id uuid.UUID, p Patch, transient bool) bool {
	i := e.objects.Index(id)
	if i < 0 {
		e.log.Debug("update object: not found", "id", id)
		return false
	}

	obj, ok := e.applyPatch(e.objects.At(i), p)
	if !ok {
		e.log.Debug("update object: nothing to apply", "id", id)
		return false
	}

	if !transient {
		e.checkpoint()
	}
	e.objects.Replace(i, obj)
	e.touch()

	e.emit(ChangeUpdate, id, transient)
	return true
}

// applyPatch merges the valid fields of p into obj. ok is false when p set
// nothing, either because it was empty or every field was rejected.
func (e *Editor) applyPatch(obj engine.SceneObject, p Patch) (_ engine.SceneObject, ok bool) {
	if p.Name != nil {
		obj.Name = *p.Name
		ok = true
	}
	if p.Position != nil {
		if engine.Finite(*p.Position) {
			obj.Position = *p.Position
			ok = true
		} else {
			e.log.Warn("ignoring non-finite position", "id", obj.ID, "value", *p.Position)
		}
	}
	if p.Rotation != nil {
		if engine.Finite(*p.Rotation) {
			obj.Rotation = *p.Rotation
			ok = true
		} else {
			e.log.Warn("ignoring non-finite rotation", "id", obj.ID, "value", *p.Rotation)
		}
	}
	if p.Scale != nil {
		if engine.Finite(*p.Scale) {
			obj.Scale = engine.SanitizeScale(*p.Scale)
			ok = true
		} else {
			e.log.Warn("ignoring non-finite scale", "id", obj.ID, "value", *p.Scale)
		}
	}
	if p.Color != nil {
		if c, err := engine.NormalizeColor(*p.Color); err == nil {
			obj.Color = c
			ok = true
		} else {
			e.log.Warn("ignoring color", "id", obj.ID, "err", err)
		}
	}
	return obj, ok
}

// SaveSnapshot checkpoints the current document, e.g. after a run of
// transient updates.
func (e *Editor) SaveSnapshot() {
	e.checkpoint()
	e.emit(ChangeSnapshot, uuid.Nil, false)
}

// DeleteObject removes an object and drops it from the selection.
func (e *Editor) DeleteObject(id uuid.UUID) bool {
	if !e.objects.Contains(id) {
		e.log.Debug("delete object: not found", "id", id)
		return false
	}

	e.checkpoint()
	e.objects.Remove(id)
	e.deselect(id)
	e.touch()

	e.emit(ChangeDelete, id, false)
	return true
}

// DuplicateObject appends a copy of id with a fresh id, shifted along X by
// the duplicate offset and named "<name> (Copy)". The copy becomes the only
// selection.
func (e *Editor) DuplicateObject(id uuid.UUID) (uuid.UUID, bool) {
	orig, ok := e.objects.Find(id)
	if !ok {
		e.log.Debug("duplicate object: not found", "id", id)
		return uuid.Nil, false
	}

	dup := orig
	dup.ID = e.newID()
	dup.Position = orig.Position.Add(mgl32.Vec3{e.duplicateOffset, 0, 0})
	if orig.Name != "" {
		dup.Name = orig.Name + " (Copy)"
	} else {
		dup.Name = "Object (Copy)"
	}

	e.checkpoint()
	e.objects.Append(dup)
	e.selected = []uuid.UUID{dup.ID}
	e.touch()

	e.emit(ChangeDuplicate, dup.ID, false)
	return dup.ID, true
}

// Undo restores the newest past snapshot. The current document goes to the
// front of the redo stack and selected ids that no longer exist are pruned.
func (e *Editor) Undo() bool {
	prev, ok := e.history.popPast()
	if !ok {
		return false
	}

	e.history.pushFutureFront(e.objects)
	e.objects = prev
	e.pruneSelection()
	e.touch()

	e.emit(ChangeUndo, uuid.Nil, false)
	return true
}

// Redo restores the first redo snapshot, pushing the current document onto
// the undo stack. The selection is left as is, so it may name ids the
// restored document does not contain; collaborators skip those.
func (e *Editor) Redo() bool {
	next, ok := e.history.popFutureFront()
	if !ok {
		return false
	}

	e.history.pushPast(e.objects)
	e.objects = next
	e.touch()

	e.emit(ChangeRedo, uuid.Nil, false)
	return true
}
