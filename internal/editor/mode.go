package editor

import "fmt"

// TransformMode is the tool the gizmo applies to the primary selection.
type TransformMode int

const (
	ModeTranslate TransformMode = iota
	ModeRotate
	ModeScale
)

var modeNames = [...]string{
	ModeTranslate: "translate",
	ModeRotate:    "rotate",
	ModeScale:     "scale",
}

func (m TransformMode) Valid() bool {
	return m >= ModeTranslate && m <= ModeScale
}

func (m TransformMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("TransformMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseTransformMode accepts "translate", "rotate" or "scale".
func ParseTransformMode(s string) (TransformMode, error) {
	for i, name := range modeNames {
		if name == s {
			return TransformMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transform mode %q", s)
}
