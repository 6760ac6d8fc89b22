package command

import "fmt"

// Mode is the application mode. It selects which built-in key table is
// consulted and which commands are valid (copy selections only fire in
// copy mode).
type Mode int

const (
	// ModeNormal is the default mode.
	ModeNormal Mode = iota
	// ModeVisual disables the mouse capture.
	ModeVisual
	// ModeCopy makes single keys copy key properties.
	ModeCopy
)

// Name returns the bare mode name.
func (m Mode) Name() string {
	switch m {
	case ModeVisual:
		return "VISUAL"
	case ModeCopy:
		return "COPY"
	default:
		return "NORMAL"
	}
}

// String renders the mode indicator shown in the status line.
func (m Mode) String() string {
	return fmt.Sprintf("-- %s --", m.Name())
}

// ParseMode resolves a mode token.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "normal", "n":
		return ModeNormal, nil
	case "visual", "v":
		return ModeVisual, nil
	case "copy", "c":
		return ModeCopy, nil
	default:
		return ModeNormal, fmt.Errorf("invalid mode %q", s)
	}
}
