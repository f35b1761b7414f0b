package app

import (
	"fmt"

	"sceneeditor/internal/audio"
	"sceneeditor/internal/editor"
)

// statusDuration is how long a status message stays on screen, in seconds.
const statusDuration = 2.0

// status is the message flashed under the top bar.
type status struct {
	msg string
	err bool
	at  float64
}

func (s *status) set(msg string, isErr bool, now float64) {
	s.msg, s.err, s.at = msg, isErr, now
}

func (s *status) visible(now float64) bool {
	return s.msg != "" && now-s.at < statusDuration
}

// describe turns a change into a status line. Selection, mode and
// transient changes are too frequent to announce.
func describe(ed *editor.Editor, c editor.Change) (string, bool) {
	if c.Transient {
		return "", false
	}
	name := func() string {
		if obj, ok := ed.Object(c.ID); ok {
			return obj.Name
		}
		return "object"
	}

	switch c.Kind {
	case editor.ChangeAdd:
		return fmt.Sprintf("Added %s", name()), true
	case editor.ChangeDuplicate:
		return fmt.Sprintf("Duplicated as %s", name()), true
	case editor.ChangeDelete:
		return "Deleted object", true
	case editor.ChangeUndo:
		return "Undo", true
	case editor.ChangeRedo:
		return "Redo", true
	case editor.ChangeSnapshot:
		return "Snapshot saved", true
	}
	return "", false
}

func cueFor(c editor.Change) (audio.Cue, bool) {
	if c.Transient {
		return 0, false
	}
	switch c.Kind {
	case editor.ChangeAdd, editor.ChangeDuplicate:
		return audio.CueAdd, true
	case editor.ChangeDelete:
		return audio.CueDelete, true
	case editor.ChangeUndo:
		return audio.CueUndo, true
	case editor.ChangeRedo:
		return audio.CueRedo, true
	}
	return 0, false
}
