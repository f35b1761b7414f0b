// Package picker turns pointer-down hits into selection changes.
package picker

import (
	"sceneeditor/internal/mirror"

	"github.com/google/uuid"
)

// HitKind classifies what a ray hit in the viewport.
type HitKind int

const (
	// HitObject is a node produced by the scene mirror.
	HitObject HitKind = iota
	// HitBackground is a non-selectable surface such as the ground grid.
	HitBackground
	// HitHelper is an overlay control such as a gizmo handle.
	HitHelper
)

// Hit is one intersection, nearest first in a hit list.
type Hit struct {
	Node     mirror.Node
	Kind     HitKind
	Distance float32
}

// Action is what a pointer-down should do to the selection.
type Action int

const (
	ActionIgnore Action = iota
	ActionSelect
	ActionClear
)

// Result is the outcome of resolving a hit list.
type Result struct {
	Action Action
	ID     uuid.UUID
}

// Lookup resolves a node to the object it mirrors.
type Lookup interface {
	IDOf(node mirror.Node) (uuid.UUID, bool)
}

// Resolve picks the nearest hit that maps to an object. With no object
// hit, an empty list or a background hit in front clears the selection,
// while a helper in front leaves it alone.
func Resolve(hits []Hit, lookup Lookup) Result {
	if len(hits) == 0 {
		return Result{Action: ActionClear}
	}
	for _, h := range hits {
		if h.Kind != HitObject || h.Node == nil {
			continue
		}
		if id, ok := lookup.IDOf(h.Node); ok {
			return Result{Action: ActionSelect, ID: id}
		}
	}
	if hits[0].Kind == HitBackground {
		return Result{Action: ActionClear}
	}
	return Result{Action: ActionIgnore}
}

// Selector is the part of the editor a picker drives.
type Selector interface {
	SelectObjects(ids []uuid.UUID)
	ToggleSelection(id uuid.UUID)
}

// Picker applies resolved hits to an editor.
type Picker struct {
	sel    Selector
	lookup Lookup
}

func New(sel Selector, lookup Lookup) *Picker {
	return &Picker{sel: sel, lookup: lookup}
}

// PointerDown resolves hits and updates the selection. With additive set
// (ctrl/cmd held) an object hit toggles instead of replacing.
func (p *Picker) PointerDown(hits []Hit, additive bool) Result {
	res := Resolve(hits, p.lookup)
	switch res.Action {
	case ActionSelect:
		if additive {
			p.sel.ToggleSelection(res.ID)
		} else {
			p.sel.SelectObjects([]uuid.UUID{res.ID})
		}
	case ActionClear:
		if !additive {
			p.sel.SelectObjects(nil)
		}
	}
	return res
}
