package mirror

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"sceneeditor/internal/editor"
	"sceneeditor/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	obj       engine.SceneObject
	destroyed bool
}

type fakeBackend struct {
	created   int
	updated   int
	destroyed int
	failType  *engine.ObjectType
}

func (b *fakeBackend) Create(obj engine.SceneObject) (Node, error) {
	if b.failType != nil && obj.Type == *b.failType {
		return nil, errors.New("load failed")
	}
	b.created++
	return &fakeNode{obj: obj}, nil
}

func (b *fakeBackend) Update(node Node, obj engine.SceneObject) {
	b.updated++
	node.(*fakeNode).obj = obj
}

func (b *fakeBackend) Destroy(node Node) {
	b.destroyed++
	node.(*fakeNode).destroyed = true
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEditor() *editor.Editor {
	return editor.New(editor.WithLogger(quiet()))
}

func TestSyncCreatesOneNodePerObject(t *testing.T) {
	ed := newEditor()
	cube := ed.AddObject(engine.TypeCube)
	ed.AddObject(engine.TypeSphere)

	be := &fakeBackend{}
	m := New(be, quiet())
	m.Sync(ed.Objects())

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, be.created)

	node, ok := m.Node(cube)
	require.True(t, ok)
	id, ok := m.IDOf(node)
	require.True(t, ok)
	assert.Equal(t, cube, id)
	assert.Equal(t, engine.TypeCube, node.(*fakeNode).obj.Type)
}

func TestSyncIsIdempotent(t *testing.T) {
	ed := newEditor()
	ed.AddObject(engine.TypeCube)

	be := &fakeBackend{}
	m := New(be, quiet())
	m.Sync(ed.Objects())
	m.Sync(ed.Objects())
	m.Sync(ed.Objects())

	assert.Equal(t, 2, be.created)
	assert.Equal(t, 0, be.destroyed)
	assert.Equal(t, 2, m.Len())
}

func TestSyncUpdatesTransformAndColor(t *testing.T) {
	ed := newEditor()
	id := ed.AddObject(engine.TypeSphere)

	be := &fakeBackend{}
	m := New(be, quiet())
	m.Sync(ed.Objects())

	pos := mgl32.Vec3{1, 2, 3}
	color := "#00ff00"
	ed.UpdateObject(id, editor.Patch{Position: &pos, Color: &color}, false)
	m.Sync(ed.Objects())

	node, _ := m.Node(id)
	got := node.(*fakeNode).obj
	assert.Equal(t, pos, got.Position)
	assert.Equal(t, "#00ff00", got.Color)
}

func TestSyncDestroysRemovedNodes(t *testing.T) {
	ed := newEditor()
	id := ed.AddObject(engine.TypeCube)

	be := &fakeBackend{}
	m := New(be, quiet())
	m.Sync(ed.Objects())
	node, _ := m.Node(id)

	ed.DeleteObject(id)
	m.Sync(ed.Objects())

	assert.Equal(t, 1, be.destroyed)
	assert.True(t, node.(*fakeNode).destroyed)
	_, ok := m.Node(id)
	assert.False(t, ok)
	_, ok = m.IDOf(node)
	assert.False(t, ok)

	// undo brings the object back with a fresh node
	ed.Undo()
	m.Sync(ed.Objects())
	_, ok = m.Node(id)
	assert.True(t, ok)
	assert.Equal(t, 3, be.created)
}

func TestFailedLoadKeepsObjectWithoutNode(t *testing.T) {
	ed := newEditor()
	seed := ed.Objects()[0].ID
	ed.AddObject(engine.TypeCube)

	mushroom := engine.TypeMushroom
	be := &fakeBackend{failType: &mushroom}
	m := New(be, quiet())
	m.Sync(ed.Objects())
	m.Sync(ed.Objects())

	_, ok := m.Node(seed)
	assert.False(t, ok)
	assert.True(t, m.Failed(seed))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, ed.Len(), "the document keeps the object")

	// still selectable and deletable through the editor
	ed.SelectObjects([]uuid.UUID{seed})
	assert.True(t, ed.IsSelected(seed))
	ed.DeleteObject(seed)
	m.Sync(ed.Objects())
	assert.False(t, m.Failed(seed))
}

func TestSyncFromSkipsUnchangedVersion(t *testing.T) {
	ed := newEditor()
	be := &fakeBackend{}
	m := New(be, quiet())

	assert.True(t, m.SyncFrom(ed))
	assert.False(t, m.SyncFrom(ed))

	ed.SetTransformMode(editor.ModeRotate)
	assert.False(t, m.SyncFrom(ed), "mode changes do not touch the document")

	ed.AddObject(engine.TypeCube)
	assert.True(t, m.SyncFrom(ed))
	assert.Equal(t, 2, m.Len())
}

func TestClose(t *testing.T) {
	ed := newEditor()
	ed.AddObject(engine.TypeCube)
	be := &fakeBackend{}
	m := New(be, quiet())
	m.SyncFrom(ed)

	m.Close()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 2, be.destroyed)
	assert.True(t, m.SyncFrom(ed), "closing forces the next sync")
}
