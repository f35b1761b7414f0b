package editor

import (
	"io"
	"log/slog"
	"testing"

	"sceneeditor/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEditor(opts ...Option) *Editor {
	return New(append([]Option{WithLogger(quietLogger())}, opts...)...)
}

func vec(x, y, z float32) *mgl32.Vec3 {
	v := mgl32.Vec3{x, y, z}
	return &v
}

func str(s string) *string {
	return &s
}

func TestNewSeedsMushroom(t *testing.T) {
	e := newTestEditor()

	objs := e.Objects()
	if len(objs) != 1 {
		t.Fatalf("Expected 1 seeded object, got %d", len(objs))
	}
	if objs[0].Type != engine.TypeMushroom || objs[0].Name != "Mushroom 1" {
		t.Errorf("Expected seeded 'Mushroom 1', got %s '%s'", objs[0].Type, objs[0].Name)
	}
	if objs[0].Position != (mgl32.Vec3{}) {
		t.Errorf("Expected seed at origin, got %v", objs[0].Position)
	}
	if len(e.SelectedIDs()) != 0 {
		t.Error("selection should start empty")
	}
	if e.CanUndo() || e.CanRedo() {
		t.Error("history should start empty")
	}
	if e.TransformMode() != ModeTranslate {
		t.Errorf("Expected translate mode, got %s", e.TransformMode())
	}
}

func TestWithoutSeed(t *testing.T) {
	e := newTestEditor(WithoutSeed())
	if e.Len() != 0 {
		t.Errorf("Expected empty document, got %d objects", e.Len())
	}
}

func TestAddObject(t *testing.T) {
	e := newTestEditor()

	id := e.AddObject(engine.TypeCube)

	obj, ok := e.Object(id)
	if !ok {
		t.Fatal("added object not found")
	}
	if obj.Name != "Cube 2" {
		t.Errorf("Expected name 'Cube 2', got '%s'", obj.Name)
	}
	if obj.Color != "#6366f1" {
		t.Errorf("Expected default cube color, got %s", obj.Color)
	}
	sel := e.SelectedIDs()
	if len(sel) != 1 || sel[0] != id {
		t.Errorf("Expected selection [%s], got %v", id, sel)
	}
	past, future := e.HistoryLen()
	if past != 1 || future != 0 {
		t.Errorf("Expected history 1/0, got %d/%d", past, future)
	}
}

func TestAddObjectOrdinalCountsAllTypes(t *testing.T) {
	e := newTestEditor()
	e.AddObject(engine.TypeCube)
	id := e.AddObject(engine.TypeSphere)

	obj, _ := e.Object(id)
	if obj.Name != "Sphere 3" {
		t.Errorf("Expected 'Sphere 3', got '%s'", obj.Name)
	}
}

func TestAddObjectUnknownType(t *testing.T) {
	e := newTestEditor()
	if id := e.AddObject(engine.ObjectType(99)); id != uuid.Nil {
		t.Errorf("Expected uuid.Nil, got %s", id)
	}
	if e.Len() != 1 || e.CanUndo() {
		t.Error("unknown type should be a no-op")
	}
}

func TestUpdateObjectCommitted(t *testing.T) {
	e := newTestEditor()
	id := e.AddObject(engine.TypeCube)

	ok := e.UpdateObject(id, Patch{Position: vec(1, 2, 3), Name: str("Box")}, false)
	if !ok {
		t.Fatal("UpdateObject should succeed for a live id")
	}

	obj, _ := e.Object(id)
	if obj.Position != (mgl32.Vec3{1, 2, 3}) || obj.Name != "Box" {
		t.Errorf("patch not applied: %+v", obj)
	}
	if obj.Type != engine.TypeCube {
		t.Error("type must not change on update")
	}
	if past, _ := e.HistoryLen(); past != 2 {
		t.Errorf("Expected 2 history entries, got %d", past)
	}
}

func TestUpdateObjectUnknownIDIsNoop(t *testing.T) {
	e := newTestEditor()
	before := e.Version()

	if e.UpdateObject(uuid.New(), Patch{Name: str("x")}, false) {
		t.Error("UpdateObject should report false for unknown id")
	}
	if e.CanUndo() {
		t.Error("unknown id must not create history")
	}
	if e.Version() != before {
		t.Error("unknown id must not change the document version")
	}
}

func TestTransientUpdatesDoNotTouchHistory(t *testing.T) {
	e := newTestEditor()
	id := e.AddObject(engine.TypeSphere)
	pastBefore, _ := e.HistoryLen()

	for i := 1; i <= 10; i++ {
		e.UpdateObject(id, Patch{Position: vec(float32(i), 0, 0)}, true)
	}

	if past, _ := e.HistoryLen(); past != pastBefore {
		t.Errorf("Expected past length %d, got %d", pastBefore, past)
	}
	obj, _ := e.Object(id)
	if obj.Position != (mgl32.Vec3{10, 0, 0}) {
		t.Errorf("Expected last transient value, got %v", obj.Position)
	}
}

func TestTransientThenSaveSnapshot(t *testing.T) {
	e := newTestEditor()
	id := e.AddObject(engine.TypeCube)

	e.UpdateObject(id, Patch{Position: vec(4, 0, 0)}, true)
	e.SaveSnapshot()
	e.UpdateObject(id, Patch{Position: vec(8, 0, 0)}, false)

	e.Undo()
	obj, _ := e.Object(id)
	if obj.Position != (mgl32.Vec3{4, 0, 0}) {
		t.Errorf("Expected undo to the checkpoint at x=4, got %v", obj.Position)
	}
}

func TestUpdateObjectGuards(t *testing.T) {
	e := newTestEditor()
	id := e.AddObject(engine.TypeCube)

	e.UpdateObject(id, Patch{Scale: vec(0, 2, 0)}, false)
	obj, _ := e.Object(id)
	if obj.Scale != (mgl32.Vec3{engine.MinScale, 2, engine.MinScale}) {
		t.Errorf("zero scale should be pushed to MinScale, got %v", obj.Scale)
	}

	nan := float32(0)
	nan = nan / nan
	e.UpdateObject(id, Patch{Position: &mgl32.Vec3{nan, 0, 0}, Color: str("#ABCDEF")}, false)
	obj, _ = e.Object(id)
	if obj.Position != (mgl32.Vec3{}) {
		t.Errorf("NaN position should be ignored, got %v", obj.Position)
	}
	if obj.Color != "#abcdef" {
		t.Errorf("Expected normalized color, got %s", obj.Color)
	}

	e.UpdateObject(id, Patch{Color: str("not-a-color")}, false)
	obj, _ = e.Object(id)
	if obj.Color != "#abcdef" {
		t.Errorf("invalid color should be ignored, got %s", obj.Color)
	}
}

func TestRejectedPatchRecordsNothing(t *testing.T) {
	e := newTestEditor(WithoutSeed())
	id := e.AddObject(engine.TypeCube)
	past, _ := e.HistoryLen()
	version := e.Version()

	nan := float32(0)
	nan = nan / nan
	if e.UpdateObject(id, Patch{Color: str("zzz")}, false) {
		t.Error("UpdateObject with only a bad color should report false")
	}
	if e.UpdateObject(id, Patch{Position: &mgl32.Vec3{nan, 0, 0}}, false) {
		t.Error("UpdateObject with only a NaN position should report false")
	}
	if e.UpdateObject(id, Patch{}, false) {
		t.Error("UpdateObject with an empty patch should report false")
	}

	if got, _ := e.HistoryLen(); got != past {
		t.Errorf("Expected past length %d, got %d", past, got)
	}
	if e.Version() != version {
		t.Errorf("Expected version %d unchanged, got %d", version, e.Version())
	}

	// a partly valid patch still commits
	if !e.UpdateObject(id, Patch{Position: &mgl32.Vec3{nan, 0, 0}, Name: str("Box")}, false) {
		t.Fatal("UpdateObject with a valid name should succeed")
	}
	if got, _ := e.HistoryLen(); got != past+1 {
		t.Errorf("Expected past length %d, got %d", past+1, got)
	}
}

func TestDeleteObjectClearsSelection(t *testing.T) {
	e := newTestEditor(WithoutSeed())
	id := e.AddObject(engine.TypeCube)
	e.SelectObjects([]uuid.UUID{id})

	if !e.DeleteObject(id) {
		t.Fatal("DeleteObject should succeed")
	}
	if len(e.SelectedIDs()) != 0 {
		t.Errorf("Expected empty selection, got %v", e.SelectedIDs())
	}
	if e.Len() != 0 {
		t.Errorf("Expected empty document, got %d", e.Len())
	}
}

func TestDeleteUnknownIsNoop(t *testing.T) {
	e := newTestEditor()
	if e.DeleteObject(uuid.New()) {
		t.Error("DeleteObject should report false for unknown id")
	}
	if e.CanUndo() {
		t.Error("unknown id must not create history")
	}
}

func TestDuplicateObject(t *testing.T) {
	e := newTestEditor()
	id := e.AddObject(engine.TypeCube)
	e.UpdateObject(id, Patch{Position: vec(1, 1, 1), Color: str("#112233")}, false)

	dupID, ok := e.DuplicateObject(id)
	if !ok {
		t.Fatal("DuplicateObject should succeed")
	}
	if dupID == id {
		t.Fatal("duplicate must get a new id")
	}

	dup, _ := e.Object(dupID)
	if dup.Position != (mgl32.Vec3{3, 1, 1}) {
		t.Errorf("Expected position offset by 2 on X, got %v", dup.Position)
	}
	if dup.Name != "Cube 2 (Copy)" {
		t.Errorf("Expected 'Cube 2 (Copy)', got '%s'", dup.Name)
	}
	if dup.Color != "#112233" || dup.Type != engine.TypeCube {
		t.Errorf("duplicate should keep color and type: %+v", dup)
	}
	sel := e.SelectedIDs()
	if len(sel) != 1 || sel[0] != dupID {
		t.Errorf("Expected only the copy selected, got %v", sel)
	}
}

func TestDuplicateEmptyName(t *testing.T) {
	e := newTestEditor(WithDuplicateOffset(5))
	id := e.AddObject(engine.TypeSphere)
	e.UpdateObject(id, Patch{Name: str("")}, false)

	dupID, _ := e.DuplicateObject(id)
	dup, _ := e.Object(dupID)
	if dup.Name != "Object (Copy)" {
		t.Errorf("Expected 'Object (Copy)', got '%s'", dup.Name)
	}
	if dup.Position.X() != 5 {
		t.Errorf("Expected custom offset 5, got %v", dup.Position)
	}
}

func TestDuplicateUnknownIsNoop(t *testing.T) {
	e := newTestEditor()
	if _, ok := e.DuplicateObject(uuid.New()); ok {
		t.Error("DuplicateObject should fail for unknown id")
	}
	if e.CanUndo() {
		t.Error("unknown id must not create history")
	}
}

func TestSetTransformMode(t *testing.T) {
	e := newTestEditor()

	e.SetTransformMode(ModeScale)
	if e.TransformMode() != ModeScale {
		t.Errorf("Expected scale, got %s", e.TransformMode())
	}
	e.SetTransformMode(TransformMode(9))
	if e.TransformMode() != ModeScale {
		t.Error("invalid mode should be ignored")
	}
	if e.CanUndo() {
		t.Error("mode changes must not create history")
	}
}

func TestParseTransformMode(t *testing.T) {
	m, err := ParseTransformMode("rotate")
	if err != nil || m != ModeRotate {
		t.Errorf("Expected rotate, got %v (%v)", m, err)
	}
	if _, err := ParseTransformMode("shear"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestChangedEvent(t *testing.T) {
	e := newTestEditor()
	var got []Change
	e.Changed.AddListener(func(c Change) { got = append(got, c) })

	id := e.AddObject(engine.TypeCube)
	e.UpdateObject(id, Patch{Position: vec(1, 0, 0)}, true)
	e.UpdateObject(uuid.New(), Patch{}, false)
	e.Undo()

	if len(got) != 3 {
		t.Fatalf("Expected 3 changes, got %d: %v", len(got), got)
	}
	if got[0].Kind != ChangeAdd || got[0].ID != id {
		t.Errorf("Expected add of %s, got %+v", id, got[0])
	}
	if got[1].Kind != ChangeUpdate || !got[1].Transient {
		t.Errorf("Expected transient update, got %+v", got[1])
	}
	if got[2].Kind != ChangeUndo {
		t.Errorf("Expected undo, got %+v", got[2])
	}
}

func TestVersionTracksDocumentOnly(t *testing.T) {
	e := newTestEditor()
	v0 := e.Version()

	e.SetTransformMode(ModeRotate)
	e.ClearSelection()
	if e.Version() != v0 {
		t.Error("selection and mode changes must not bump the version")
	}

	e.AddObject(engine.TypeCube)
	if e.Version() == v0 {
		t.Error("adding an object must bump the version")
	}
}

func TestDuplicateIDGeneratorPanics(t *testing.T) {
	fixed := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	e := newTestEditor(WithIDGenerator(func() uuid.UUID { return fixed }))

	defer func() {
		if recover() == nil {
			t.Error("a colliding id generator should trip the duplicate-id assertion")
		}
	}()
	e.AddObject(engine.TypeCube)
}
