// Package editor owns the scene document and is its only writer. Every
// collaborator (viewport mirror, picker, gizmo, panels, macros) reads state
// through the accessors and changes it through the mutation methods.
//
// An Editor is not safe for concurrent use; it lives on the main loop.
package editor

import (
	"log/slog"
	"slices"

	"sceneeditor/internal/engine"

	"github.com/google/uuid"
)

// DefaultDuplicateOffset is how far along X a duplicate is moved.
const DefaultDuplicateOffset float32 = 2

// ChangeKind identifies which operation produced a Change.
type ChangeKind int

const (
	ChangeAdd ChangeKind = iota
	ChangeUpdate
	ChangeDelete
	ChangeDuplicate
	ChangeSelect
	ChangeMode
	ChangeSnapshot
	ChangeUndo
	ChangeRedo
)

var changeNames = [...]string{
	ChangeAdd:       "add",
	ChangeUpdate:    "update",
	ChangeDelete:    "delete",
	ChangeDuplicate: "duplicate",
	ChangeSelect:    "select",
	ChangeMode:      "mode",
	ChangeSnapshot:  "snapshot",
	ChangeUndo:      "undo",
	ChangeRedo:      "redo",
}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeNames) {
		return "unknown"
	}
	return changeNames[k]
}

// Change is published after every operation that had an effect.
type Change struct {
	Kind      ChangeKind
	ID        uuid.UUID // affected object, uuid.Nil when not object-specific
	Transient bool
}

// Editor holds the document, selection, transform mode and history.
type Editor struct {
	objects       engine.Document
	selected      []uuid.UUID
	transformMode TransformMode
	history       history
	version       uint64

	duplicateOffset float32
	newID           func() uuid.UUID
	log             *slog.Logger
	seed            bool

	// Changed fires once after each effective operation. Listeners must
	// not call back into mutation methods.
	Changed engine.EventWithArg[Change]
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithHistoryLimit caps the undo stack. Zero means unbounded.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) {
		e.history.setLimit(n)
	}
}

// WithDuplicateOffset sets the X offset applied to duplicates.
func WithDuplicateOffset(d float32) Option {
	return func(e *Editor) {
		e.duplicateOffset = d
	}
}

// WithIDGenerator replaces uuid.New for new object ids.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(e *Editor) {
		if gen != nil {
			e.newID = gen
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithoutSeed starts from an empty document instead of the default mushroom.
func WithoutSeed() Option {
	return func(e *Editor) {
		e.seed = false
	}
}

// New creates an editor session. Unless WithoutSeed is given the document
// starts with one mushroom at the origin; selection and history are empty.
func New(opts ...Option) *Editor {
	e := &Editor{
		transformMode:   ModeTranslate,
		history:         newHistory(DefaultHistoryLimit),
		duplicateOffset: DefaultDuplicateOffset,
		newID:           uuid.New,
		log:             slog.Default(),
		seed:            true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.seed {
		e.objects = engine.NewDocument(engine.NewSceneObject(e.newID(), engine.TypeMushroom, 1))
	}
	return e
}

// Objects returns a copy of the live object list in document order.
func (e *Editor) Objects() []engine.SceneObject {
	return e.objects.Objects()
}

// Object looks up a live object by id.
func (e *Editor) Object(id uuid.UUID) (engine.SceneObject, bool) {
	return e.objects.Find(id)
}

func (e *Editor) Len() int {
	return e.objects.Len()
}

// SelectedIDs returns a copy of the selection in order.
func (e *Editor) SelectedIDs() []uuid.UUID {
	return slices.Clone(e.selected)
}

// Primary is the first selected id, the one the gizmo attaches to.
func (e *Editor) Primary() (uuid.UUID, bool) {
	if len(e.selected) == 0 {
		return uuid.Nil, false
	}
	return e.selected[0], true
}

func (e *Editor) IsSelected(id uuid.UUID) bool {
	return slices.Contains(e.selected, id)
}

func (e *Editor) TransformMode() TransformMode {
	return e.transformMode
}

func (e *Editor) CanUndo() bool {
	return len(e.history.past) > 0
}

func (e *Editor) CanRedo() bool {
	return len(e.history.future) > 0
}

// HistoryLen reports the sizes of the undo and redo stacks.
func (e *Editor) HistoryLen() (past, future int) {
	return len(e.history.past), len(e.history.future)
}

// HistoryLimit returns the snapshot cap, 0 if unbounded.
func (e *Editor) HistoryLimit() int {
	return e.history.limit
}

// SetHistoryLimit changes the cap, dropping the oldest snapshots if needed.
func (e *Editor) SetHistoryLimit(n int) {
	e.history.setLimit(n)
}

// Version increases whenever the document changes. Selection and mode
// changes leave it alone.
func (e *Editor) Version() uint64 {
	return e.version
}

func (e *Editor) emit(kind ChangeKind, id uuid.UUID, transient bool) {
	e.Changed.Invoke(Change{Kind: kind, ID: id, Transient: transient})
}

// checkpoint records the document as it is right now. Call it immediately
// before the mutation it guards.
func (e *Editor) checkpoint() {
	e.history.record(e.objects.Clone())
}

func (e *Editor) touch() {
	e.version++
}
