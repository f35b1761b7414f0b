package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Document is the ordered list of scene objects. Order is insertion order
// and only matters for display and default naming.
type Document struct {
	objects []SceneObject
}

// NewDocument builds a document from objs, asserting id uniqueness.
func NewDocument(objs ...SceneObject) Document {
	d := Document{objects: make([]SceneObject, 0, len(objs))}
	for _, o := range objs {
		d.Append(o)
	}
	return d
}

func (d *Document) Len() int {
	return len(d.objects)
}

// Objects returns a copy of the object list.
func (d *Document) Objects() []SceneObject {
	out := make([]SceneObject, len(d.objects))
	copy(out, d.objects)
	return out
}

// At returns the object at index i.
func (d *Document) At(i int) SceneObject {
	return d.objects[i]
}

// Index returns the position of id, or -1.
func (d *Document) Index(id uuid.UUID) int {
	for i := range d.objects {
		if d.objects[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) Find(id uuid.UUID) (SceneObject, bool) {
	if i := d.Index(id); i >= 0 {
		return d.objects[i], true
	}
	return SceneObject{}, false
}

func (d *Document) Contains(id uuid.UUID) bool {
	return d.Index(id) >= 0
}

// IDs returns the ids in document order.
func (d *Document) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(d.objects))
	for i := range d.objects {
		ids[i] = d.objects[i].ID
	}
	return ids
}

// Append adds obj at the end. A repeated id means identifier generation is
// broken; history would be corrupted from here on, so it panics.
func (d *Document) Append(obj SceneObject) {
	if d.Contains(obj.ID) {
		panic(fmt.Errorf("%w: %s", ErrDuplicateID, obj.ID))
	}
	d.objects = append(d.objects, obj)
}

// Replace overwrites the object at index i. The id must not change.
func (d *Document) Replace(i int, obj SceneObject) {
	if d.objects[i].ID != obj.ID {
		panic(fmt.Errorf("replace at %d changes id %s to %s", i, d.objects[i].ID, obj.ID))
	}
	d.objects[i] = obj
}

// Remove deletes id and reports whether it was present.
func (d *Document) Remove(id uuid.UUID) bool {
	i := d.Index(id)
	if i < 0 {
		return false
	}
	d.objects = append(d.objects[:i], d.objects[i+1:]...)
	return true
}

// Clone returns a deep, independent copy suitable for a history snapshot.
func (d *Document) Clone() Document {
	out := Document{objects: make([]SceneObject, 0, len(d.objects))}
	if len(d.objects) == 0 {
		return out
	}
	if err := copier.CopyWithOption(&out.objects, &d.objects, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen here
		panic(fmt.Errorf("clone document: %w", err))
	}
	return out
}

// Equal compares two documents field by field, in order.
func (d *Document) Equal(other Document) bool {
	if len(d.objects) != len(other.objects) {
		return false
	}
	for i := range d.objects {
		if d.objects[i] != other.objects[i] {
			return false
		}
	}
	return true
}
