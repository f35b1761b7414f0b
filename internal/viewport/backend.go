// Package viewport is the raylib side of the editor: it builds models for
// scene objects, raycasts them for picking and draws the 3D view.
package viewport

import (
	"fmt"

	"sceneeditor/internal/assets"
	"sceneeditor/internal/engine"
	"sceneeditor/internal/mirror"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Node is the visual for one scene object.
type Node struct {
	Type   engine.ObjectType
	Model  rl.Model
	Tint   rl.Color
	local  rl.BoundingBox
	shared bool
}

// Backend builds nodes with raylib. Cubes and spheres get their own
// generated meshes; mushrooms share one cached model.
type Backend struct {
	cache        *assets.Cache
	mushroomPath string
}

var _ mirror.Backend = (*Backend)(nil)

func NewBackend(cache *assets.Cache, mushroomPath string) *Backend {
	return &Backend{cache: cache, mushroomPath: mushroomPath}
}

func (b *Backend) Create(obj engine.SceneObject) (mirror.Node, error) {
	n := &Node{Type: obj.Type}

	switch obj.Type {
	case engine.TypeCube:
		n.Model = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	case engine.TypeSphere:
		n.Model = rl.LoadModelFromMesh(rl.GenMeshSphere(0.5, 32, 32))
	case engine.TypeMushroom:
		model, err := b.cache.Model(b.mushroomPath)
		if err != nil {
			return nil, err
		}
		n.Model = model
		n.shared = true
	default:
		return nil, fmt.Errorf("%w: %d", engine.ErrUnknownType, int(obj.Type))
	}

	n.Model.Transform = rl.MatrixIdentity()
	n.local = rl.GetModelBoundingBox(n.Model)
	return n, nil
}

func (b *Backend) Update(node mirror.Node, obj engine.SceneObject) {
	n := node.(*Node)
	n.Model.Transform = TransformMatrix(obj.Position, obj.Rotation, obj.Scale)
	n.Tint = Color(obj.Color)
}

func (b *Backend) Destroy(node mirror.Node) {
	n := node.(*Node)
	if !n.shared {
		rl.UnloadModel(n.Model)
	}
}

// Draw renders the node with its current transform and tint.
func (n *Node) Draw() {
	rl.DrawModel(n.Model, rl.Vector3Zero(), 1.0, n.Tint)
}

// Bounds is the world-space box around the transformed model.
func (n *Node) Bounds() rl.BoundingBox {
	lo, hi := n.local.Min, n.local.Max
	corners := [8]rl.Vector3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}

	box := rl.BoundingBox{}
	for i, c := range corners {
		p := rl.Vector3Transform(c, n.Model.Transform)
		if i == 0 {
			box.Min, box.Max = p, p
			continue
		}
		box.Min = rl.Vector3Min(box.Min, p)
		box.Max = rl.Vector3Max(box.Max, p)
	}
	return box
}

// TransformMatrix builds scale, then X/Y/Z rotation in radians, then
// translation.
func TransformMatrix(pos, rot, scale mgl32.Vec3) rl.Matrix {
	scaleMatrix := rl.MatrixScale(scale[0], scale[1], scale[2])
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateX(rot[0]), rl.MatrixRotateY(rot[1])), rl.MatrixRotateZ(rot[2]))
	transMatrix := rl.MatrixTranslate(pos[0], pos[1], pos[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
}

// Vec converts to raylib's vector type.
func Vec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func FromVec(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Color converts a "#rrggbb" string to an opaque raylib color.
func Color(hex string) rl.Color {
	r, g, b := engine.ColorRGB255(hex)
	return rl.NewColor(r, g, b, 255)
}
