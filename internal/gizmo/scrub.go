package gizmo

import (
	"fmt"

	"sceneeditor/internal/editor"
	"sceneeditor/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Vector names one of the three transform vectors of an object.
type Vector int

const (
	VectorPosition Vector = iota
	VectorRotation
	VectorScale
)

func (v Vector) String() string {
	switch v {
	case VectorPosition:
		return "position"
	case VectorRotation:
		return "rotation"
	case VectorScale:
		return "scale"
	}
	return fmt.Sprintf("vector(%d)", int(v))
}

// Field is one scalar component of a transform as shown in the properties
// panel. Rotation is displayed in degrees and stored in radians.
type Field struct {
	Vector Vector
	Axis   int
}

// Get returns the display value of the field on t.
func (f Field) Get(t Transform) float32 {
	switch f.Vector {
	case VectorRotation:
		return mgl32.RadToDeg(t.Rotation[f.Axis])
	case VectorScale:
		return t.Scale[f.Axis]
	default:
		return t.Position[f.Axis]
	}
}

// Set returns t with the field changed to the display value v.
func (f Field) Set(t Transform, v float32) Transform {
	switch f.Vector {
	case VectorRotation:
		t.Rotation[f.Axis] = mgl32.DegToRad(v)
	case VectorScale:
		t.Scale[f.Axis] = v
	default:
		t.Position[f.Axis] = v
	}
	return t
}

// TransformOf extracts the transform of obj.
func TransformOf(obj engine.SceneObject) Transform {
	return Transform{Position: obj.Position, Rotation: obj.Rotation, Scale: obj.Scale}
}

const (
	// ScrubSensitivity is display units per pixel of horizontal drag.
	ScrubSensitivity float32 = 0.01
	// ScrubFineSensitivity applies while shift is held.
	ScrubFineSensitivity float32 = 0.001
	// ScrubClickSlop is how far the pointer may move and still count as a
	// click that opens the text editor.
	ScrubClickSlop float32 = 2
)

// Scrub is a horizontal drag over one numeric field. It follows the same
// transient/commit contract as a gizmo drag.
type Scrub struct {
	*Session
	Field  Field
	startX float32
	base   float32
	moved  bool
}

// BeginScrub starts scrubbing field of object id with the pointer at x.
func BeginScrub(ed *editor.Editor, id uuid.UUID, field Field, x float32) (*Scrub, bool) {
	if field.Axis < 0 || field.Axis > 2 {
		return nil, false
	}
	s, ok := Begin(ed, id)
	if !ok {
		return nil, false
	}
	return &Scrub{Session: s, Field: field, startX: x, base: field.Get(s.start)}, true
}

// Move updates the value for pointer position x.
func (s *Scrub) Move(x float32, fine bool) {
	dx := x - s.startX
	if !s.moved && dx < ScrubClickSlop && dx > -ScrubClickSlop {
		return
	}
	s.moved = true
	sens := ScrubSensitivity
	if fine {
		sens = ScrubFineSensitivity
	}
	s.Drag(s.Field.Set(s.start, s.base+dx*sens))
}

// Clicked reports whether the pointer never left the click slop, in which
// case the caller should open the field for typing instead.
func (s *Scrub) Clicked() bool {
	return !s.moved
}

// Value is the current display value.
func (s *Scrub) Value() float32 {
	return s.Field.Get(s.last)
}

// SetField writes a typed value as a single committed update.
func SetField(ed *editor.Editor, id uuid.UUID, field Field, v float32) bool {
	obj, ok := ed.Object(id)
	if !ok || field.Axis < 0 || field.Axis > 2 {
		return false
	}
	t := field.Set(TransformOf(obj), v)
	return ed.UpdateObject(id, editor.TransformPatch(t.Position, t.Rotation, t.Scale), false)
}
