package editor

import "sceneeditor/internal/engine"

// DefaultHistoryLimit caps the number of undo snapshots kept.
const DefaultHistoryLimit = 100

// history holds full-document snapshots. past runs older to newer,
// future runs next to later, so past[len-1] is what undo restores and
// future[0] is what redo restores.
type history struct {
	past   []engine.Document
	future []engine.Document
	limit  int // 0 = unbounded
}

func newHistory(limit int) history {
	if limit < 0 {
		limit = 0
	}
	return history{limit: limit}
}

// record pushes a checkpoint and drops the redo branch.
func (h *history) record(snap engine.Document) {
	h.pushPast(snap)
	h.future = nil
}

func (h *history) pushPast(snap engine.Document) {
	h.past = append(h.past, snap)
	h.trim()
}

func (h *history) trim() {
	if h.limit > 0 && len(h.past) > h.limit {
		excess := len(h.past) - h.limit
		// zero the dropped entries so their snapshots can be collected
		clear(h.past[:excess])
		h.past = h.past[excess:]
	}
}

func (h *history) popPast() (engine.Document, bool) {
	if len(h.past) == 0 {
		return engine.Document{}, false
	}
	snap := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return snap, true
}

func (h *history) pushFutureFront(snap engine.Document) {
	h.future = append([]engine.Document{snap}, h.future...)
}

func (h *history) popFutureFront() (engine.Document, bool) {
	if len(h.future) == 0 {
		return engine.Document{}, false
	}
	snap := h.future[0]
	h.future = h.future[1:]
	return snap, true
}

func (h *history) setLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	h.limit = limit
	h.trim()
}
