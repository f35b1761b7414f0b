// Package mirror projects the editor document into renderable nodes. It
// keeps exactly one node per live object and an explicit id<->node table
// so lookups never walk a scene tree.
package mirror

import (
	"log/slog"

	"sceneeditor/internal/engine"

	"github.com/google/uuid"
)

// Node is an opaque handle owned by a Backend. It is used as a map key,
// so backends hand out pointers.
type Node any

// Backend creates and releases the visual side of objects. Create picks a
// constructor by object type; an error means the object stays without a
// node (for example an asset that failed to load).
type Backend interface {
	Create(obj engine.SceneObject) (Node, error)
	Update(node Node, obj engine.SceneObject)
	Destroy(node Node)
}

// Source is the read side of the editor the mirror needs.
type Source interface {
	Objects() []engine.SceneObject
	Version() uint64
}

// Mirror keeps a Backend in step with a document.
type Mirror struct {
	backend Backend
	log     *slog.Logger

	nodes  map[uuid.UUID]Node
	ids    map[Node]uuid.UUID
	failed map[uuid.UUID]struct{}

	synced  bool
	version uint64
}

func New(backend Backend, log *slog.Logger) *Mirror {
	if log == nil {
		log = slog.Default()
	}
	return &Mirror{
		backend: backend,
		log:     log,
		nodes:   make(map[uuid.UUID]Node),
		ids:     make(map[Node]uuid.UUID),
		failed:  make(map[uuid.UUID]struct{}),
	}
}

// SyncFrom re-projects src if its document changed since the last call.
// Returns whether a sync ran.
func (m *Mirror) SyncFrom(src Source) bool {
	v := src.Version()
	if m.synced && v == m.version {
		return false
	}
	m.Sync(src.Objects())
	m.synced = true
	m.version = v
	return true
}

// Sync creates nodes for new ids, updates existing ones and destroys
// nodes whose id is gone. Running it twice on the same input changes
// nothing the second time.
func (m *Mirror) Sync(objs []engine.SceneObject) {
	live := make(map[uuid.UUID]struct{}, len(objs))

	for _, obj := range objs {
		live[obj.ID] = struct{}{}

		if node, ok := m.nodes[obj.ID]; ok {
			m.backend.Update(node, obj)
			continue
		}
		if _, ok := m.failed[obj.ID]; ok {
			continue
		}

		node, err := m.backend.Create(obj)
		if err != nil {
			m.log.Warn("object has no visual", "id", obj.ID, "type", obj.Type, "err", err)
			m.failed[obj.ID] = struct{}{}
			continue
		}
		m.nodes[obj.ID] = node
		m.ids[node] = obj.ID
		m.backend.Update(node, obj)
	}

	for id, node := range m.nodes {
		if _, ok := live[id]; ok {
			continue
		}
		m.backend.Destroy(node)
		delete(m.nodes, id)
		delete(m.ids, node)
	}
	// a failed id that leaves the document gets a fresh attempt if it
	// ever comes back through undo or redo
	for id := range m.failed {
		if _, ok := live[id]; !ok {
			delete(m.failed, id)
		}
	}
}

// Node returns the node mirroring id.
func (m *Mirror) Node(id uuid.UUID) (Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// IDOf maps a node back to its object id.
func (m *Mirror) IDOf(node Node) (uuid.UUID, bool) {
	id, ok := m.ids[node]
	return id, ok
}

// Failed reports whether id is live but could not be given a node.
func (m *Mirror) Failed(id uuid.UUID) bool {
	_, ok := m.failed[id]
	return ok
}

// Len is the number of live nodes.
func (m *Mirror) Len() int {
	return len(m.nodes)
}

// Each calls fn for every node, in no particular order.
func (m *Mirror) Each(fn func(id uuid.UUID, node Node)) {
	for id, node := range m.nodes {
		fn(id, node)
	}
}

// Close destroys every node.
func (m *Mirror) Close() {
	for id, node := range m.nodes {
		m.backend.Destroy(node)
		delete(m.nodes, id)
		delete(m.ids, node)
	}
	clear(m.failed)
	m.synced = false
}
