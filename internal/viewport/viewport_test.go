package viewport

import (
	"io"
	"log/slog"
	"testing"

	"sceneeditor/internal/editor"
	"sceneeditor/internal/engine"
	"sceneeditor/internal/mirror"
	"sceneeditor/internal/picker"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxBackend builds unit-box nodes without touching the GPU.
type boxBackend struct{}

func (boxBackend) Create(obj engine.SceneObject) (mirror.Node, error) {
	return &Node{
		Type:  obj.Type,
		Model: rl.Model{Transform: rl.MatrixIdentity()},
		local: rl.BoundingBox{Min: rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5}, Max: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}},
	}, nil
}

func (boxBackend) Update(node mirror.Node, obj engine.SceneObject) {
	node.(*Node).Model.Transform = TransformMatrix(obj.Position, obj.Rotation, obj.Scale)
}

func (boxBackend) Destroy(mirror.Node) {}

func scene(t *testing.T) (*editor.Editor, *mirror.Mirror) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ed := editor.New(editor.WithLogger(log), editor.WithoutSeed())
	m := mirror.New(boxBackend{}, log)
	return ed, m
}

func kinds(hits []picker.Hit) []picker.HitKind {
	out := make([]picker.HitKind, len(hits))
	for i, h := range hits {
		out[i] = h.Kind
	}
	return out
}

func TestBoundsFollowTransform(t *testing.T) {
	ed, m := scene(t)
	id := ed.AddObject(engine.TypeCube)
	pos := mgl32.Vec3{3, 0, 0}
	scale := mgl32.Vec3{2, 1, 1}
	ed.UpdateObject(id, editor.Patch{Position: &pos, Scale: &scale}, false)
	m.SyncFrom(ed)

	node, ok := m.Node(id)
	require.True(t, ok)
	b := node.(*Node).Bounds()
	assert.InDelta(t, 2, b.Min.X, 1e-5)
	assert.InDelta(t, 4, b.Max.X, 1e-5)
	assert.InDelta(t, -0.5, b.Min.Y, 1e-5)
}

func TestPickObjectBeforeGrid(t *testing.T) {
	ed, m := scene(t)
	id := ed.AddObject(engine.TypeCube)
	m.SyncFrom(ed)

	dir := rl.Vector3Normalize(rl.Vector3{X: 0, Y: -0.1, Z: 1})
	hits := Pick(rl.Ray{Position: rl.Vector3{X: 0, Y: 1, Z: -10}, Direction: dir}, m, Overlay{HotAxis: -1})

	require.Equal(t, []picker.HitKind{picker.HitObject, picker.HitBackground}, kinds(hits))
	got, ok := m.IDOf(hits[0].Node)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestPickGizmoInFront(t *testing.T) {
	ed, m := scene(t)
	ed.AddObject(engine.TypeCube)
	m.SyncFrom(ed)

	ray := rl.Ray{Position: rl.Vector3{X: 1, Y: 5, Z: 0}, Direction: rl.Vector3{X: 0, Y: -1, Z: 0}}
	ov := Overlay{Visible: true, Mode: editor.ModeTranslate, HotAxis: -1}

	assert.Equal(t, []picker.HitKind{picker.HitHelper, picker.HitBackground}, kinds(Pick(ray, m, ov)))

	ov.Visible = false
	assert.Equal(t, []picker.HitKind{picker.HitBackground}, kinds(Pick(ray, m, ov)))
}

func TestPickOffGrid(t *testing.T) {
	_, m := scene(t)
	ray := rl.Ray{Position: rl.Vector3{X: 50, Y: 5, Z: 0}, Direction: rl.Vector3{X: 0, Y: -1, Z: 0}}
	assert.Empty(t, Pick(ray, m, Overlay{HotAxis: -1}))
}

func TestColor(t *testing.T) {
	assert.Equal(t, rl.NewColor(0x63, 0x66, 0xf1, 255), Color("#6366f1"))
	assert.Equal(t, rl.White, Color("garbage"))
}
