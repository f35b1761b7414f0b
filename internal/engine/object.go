package engine

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// ObjectType is the closed set of things that can live in a scene.
type ObjectType int

const (
	TypeCube ObjectType = iota
	TypeSphere
	TypeMushroom
)

// MinScale is the smallest scale magnitude accepted on any axis.
// Anything closer to zero collapses the geometry.
const MinScale float32 = 1e-4

var typeNames = [...]string{
	TypeCube:     "cube",
	TypeSphere:   "sphere",
	TypeMushroom: "mushroom",
}

var typeLabels = [...]string{
	TypeCube:     "Cube",
	TypeSphere:   "Sphere",
	TypeMushroom: "Mushroom",
}

var defaultColors = [...]string{
	TypeCube:     "#6366f1", // indigo
	TypeSphere:   "#ec4899", // pink
	TypeMushroom: "#ffffff",
}

// Valid reports whether t is one of the known variants.
func (t ObjectType) Valid() bool {
	return t >= TypeCube && t <= TypeMushroom
}

// IsPrimitive is true for generated meshes whose color is rendered.
func (t ObjectType) IsPrimitive() bool {
	return t == TypeCube || t == TypeSphere
}

func (t ObjectType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ObjectType(%d)", int(t))
	}
	return typeNames[t]
}

// Label is the capitalized name used for default object names.
func (t ObjectType) Label() string {
	if !t.Valid() {
		return "Object"
	}
	return typeLabels[t]
}

// ParseObjectType maps "cube", "sphere" or "mushroom" to a type.
func ParseObjectType(s string) (ObjectType, error) {
	for i, name := range typeNames {
		if name == s {
			return ObjectType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// DefaultColor returns the hex color a freshly added object of type t gets.
func DefaultColor(t ObjectType) string {
	if !t.Valid() {
		return "#ffffff"
	}
	return defaultColors[t]
}

// DefaultName builds "<Type> <ordinal>", e.g. "Cube 2".
func DefaultName(t ObjectType, ordinal int) string {
	return fmt.Sprintf("%s %d", t.Label(), ordinal)
}

// SceneObject is one editable entity of the document.
// Rotation is Euler angles in radians.
type SceneObject struct {
	ID       uuid.UUID
	Type     ObjectType
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Color    string
}

// NewSceneObject returns an object at the origin with unit scale, the
// type's default color and the default name for ordinal.
func NewSceneObject(id uuid.UUID, t ObjectType, ordinal int) SceneObject {
	return SceneObject{
		ID:       id,
		Type:     t,
		Name:     DefaultName(t, ordinal),
		Position: mgl32.Vec3{},
		Rotation: mgl32.Vec3{},
		Scale:    mgl32.Vec3{1, 1, 1},
		Color:    DefaultColor(t),
	}
}

// SanitizeScale pushes near-zero components out to ±MinScale.
func SanitizeScale(s mgl32.Vec3) mgl32.Vec3 {
	for i, v := range s {
		if v > -MinScale && v < MinScale {
			if v < 0 {
				s[i] = -MinScale
			} else {
				s[i] = MinScale
			}
		}
	}
	return s
}

// Finite reports whether every component of v is a real number.
func Finite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
