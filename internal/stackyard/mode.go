package stackyard

import (
	"fmt"
	"strings"
)

// Mode selects how a multi-crate move is carried out.
type Mode int

const (
	// ModeSingle relocates crates one at a time, reversing their order.
	ModeSingle Mode = iota

	// ModeBlock relocates crates as one block, preserving their order.
	ModeBlock
)

// ValidModes lists the accepted mode names.
var ValidModes = []string{"single", "block"}

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeBlock:
		return "block"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts a mode name or the crane model number (9000, 9001).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "9000":
		return ModeSingle, nil
	case "block", "9001":
		return ModeBlock, nil
	}
	return 0, fmt.Errorf("invalid mode %q: must be one of %v", s, ValidModes)
}
