// Package gizmo implements transform drags on the primary selection. A drag
// owns its own history entry: every intermediate frame is a transient
// update and End commits once, so a whole gesture undoes in one step.
package gizmo

import (
	"sceneeditor/internal/editor"
	"sceneeditor/internal/mirror"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Session tracks one continuous edit of one object's transform.
type Session struct {
	ed     *editor.Editor
	id     uuid.UUID
	start  Transform
	last   Transform
	active bool
}

// Begin starts a session on id. It fails if the object does not exist.
func Begin(ed *editor.Editor, id uuid.UUID) (*Session, bool) {
	obj, ok := ed.Object(id)
	if !ok {
		return nil, false
	}
	t := TransformOf(obj)
	return &Session{ed: ed, id: id, start: t, last: t, active: true}, true
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Start is the transform the object had when the session began.
func (s *Session) Start() Transform {
	return s.start
}

func (s *Session) Active() bool {
	return s.active
}

// Drag shows t without recording history.
func (s *Session) Drag(t Transform) {
	if !s.active {
		return
	}
	s.last = t
	s.ed.UpdateObject(s.id, editor.TransformPatch(t.Position, t.Rotation, t.Scale), true)
}

// End commits the last dragged transform as a single history entry whose
// undo state is the pre-drag transform. A drag that ended where it began
// records nothing. Returns whether an entry was recorded.
func (s *Session) End() bool {
	if !s.active {
		return false
	}
	s.active = false
	if s.last == s.start {
		return false
	}
	if _, ok := s.ed.Object(s.id); !ok {
		return false
	}
	// put the pre-drag values back so the checkpoint taken by the commit
	// is the document as it was before the gesture
	s.ed.UpdateObject(s.id, editor.TransformPatch(s.start.Position, s.start.Rotation, s.start.Scale), true)
	return s.ed.UpdateObject(s.id, editor.TransformPatch(s.last.Position, s.last.Rotation, s.last.Scale), false)
}

// Cancel restores the pre-drag transform and records nothing.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	s.ed.UpdateObject(s.id, editor.TransformPatch(s.start.Position, s.start.Rotation, s.start.Scale), true)
}

// Abandon drops the session as a lost pointer-up would: the transient
// values stay applied and no history entry is made.
func (s *Session) Abandon() {
	s.active = false
}

// NodeLookup finds the mirror node for an object.
type NodeLookup interface {
	Node(id uuid.UUID) (mirror.Node, bool)
}

// Target is the object the gizmo attaches to: the first selected id that
// still exists and has a visual node. Stale ids left in the selection
// after a redo are skipped.
func Target(ed *editor.Editor, nodes NodeLookup) (uuid.UUID, bool) {
	for _, id := range ed.SelectedIDs() {
		if _, ok := ed.Object(id); !ok {
			continue
		}
		if _, ok := nodes.Node(id); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// AxisDrag is a session driven by a ray dragging one gizmo handle.
type AxisDrag struct {
	*Session
	Mode   editor.TransformMode
	Axis   int
	center mgl32.Vec3
	normal mgl32.Vec3
	startT float32
}

// BeginAxisDrag grabs handle axis of the object id under ray.
func BeginAxisDrag(ed *editor.Editor, id uuid.UUID, axis int, r Ray, cameraPos mgl32.Vec3) (*AxisDrag, bool) {
	if axis < 0 || axis >= len(Axes) {
		return nil, false
	}
	s, ok := Begin(ed, id)
	if !ok {
		return nil, false
	}
	d := &AxisDrag{
		Session: s,
		Mode:    ed.TransformMode(),
		Axis:    axis,
		center:  s.start.Position,
	}
	d.normal = DragPlaneNormal(Axes[axis], d.center, cameraPos)
	if pt, ok := RayPlaneIntersect(r, d.center, d.normal); ok {
		d.startT = pt.Sub(d.center).Dot(Axes[axis])
	}
	return d, true
}

// Update applies the drag for the current ray.
func (d *AxisDrag) Update(r Ray) {
	pt, ok := RayPlaneIntersect(r, d.center, d.normal)
	if !ok {
		return
	}
	delta := pt.Sub(d.center).Dot(Axes[d.Axis]) - d.startT
	d.Drag(ApplyDrag(d.Mode, d.Axis, delta, d.start))
}
