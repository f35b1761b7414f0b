package editor

import (
	"testing"

	"sceneeditor/internal/engine"

	"github.com/google/uuid"
)

func TestSelectObjectsReplaces(t *testing.T) {
	e := newTestEditor()
	a := e.AddObject(engine.TypeCube)
	b := e.AddObject(engine.TypeSphere)

	e.SelectObjects([]uuid.UUID{a, b})
	sel := e.SelectedIDs()
	if len(sel) != 2 || sel[0] != a || sel[1] != b {
		t.Errorf("Expected [a b], got %v", sel)
	}

	primary, ok := e.Primary()
	if !ok || primary != a {
		t.Errorf("Expected primary a, got %s", primary)
	}

	e.SelectObjects(nil)
	if len(e.SelectedIDs()) != 0 {
		t.Error("nil should clear the selection")
	}
	if _, ok := e.Primary(); ok {
		t.Error("Primary should report false with no selection")
	}
}

func TestSelectObjectsFiltersUnknownAndDuplicates(t *testing.T) {
	e := newTestEditor()
	a := e.AddObject(engine.TypeCube)

	e.SelectObjects([]uuid.UUID{uuid.New(), a, a})
	sel := e.SelectedIDs()
	if len(sel) != 1 || sel[0] != a {
		t.Errorf("Expected [a], got %v", sel)
	}
}

func TestSelectionNeverTouchesHistory(t *testing.T) {
	e := newTestEditor()
	a := e.AddObject(engine.TypeCube)
	past, future := e.HistoryLen()

	e.SelectObjects([]uuid.UUID{a})
	e.ToggleSelection(a)
	e.ToggleSelection(a)
	e.ClearSelection()

	p, f := e.HistoryLen()
	if p != past || f != future {
		t.Errorf("selection changed history: %d/%d -> %d/%d", past, future, p, f)
	}
}

func TestToggleSelection(t *testing.T) {
	e := newTestEditor()
	seed := e.Objects()[0].ID
	a := e.AddObject(engine.TypeCube) // selects a

	e.ToggleSelection(seed)
	sel := e.SelectedIDs()
	if len(sel) != 2 || sel[1] != seed {
		t.Errorf("Expected [a seed], got %v", sel)
	}

	e.ToggleSelection(a)
	sel = e.SelectedIDs()
	if len(sel) != 1 || sel[0] != seed {
		t.Errorf("Expected [seed], got %v", sel)
	}

	e.ToggleSelection(uuid.New())
	if len(e.SelectedIDs()) != 1 {
		t.Error("toggling an unknown id should do nothing")
	}
	if !e.IsSelected(seed) || e.IsSelected(a) {
		t.Error("IsSelected disagrees with SelectedIDs")
	}
}

func TestSelectedIDsReturnsCopy(t *testing.T) {
	e := newTestEditor()
	a := e.AddObject(engine.TypeCube)

	sel := e.SelectedIDs()
	sel[0] = uuid.Nil
	if !e.IsSelected(a) {
		t.Error("SelectedIDs should not expose internal storage")
	}
}
