package builder

import (
	"fmt"
	"strings"
)

// Size selects how dense and wide a generated layout is.
type Size uint8

const (
	Small Size = iota
	Medium
	Large
)

// String returns the one-letter name used in configuration.
func (s Size) String() string {
	switch s {
	case Small:
		return "s"
	case Medium:
		return "m"
	case Large:
		return "l"
	default:
		return fmt.Sprintf("Size(%d)", s)
	}
}

// ParseSize accepts s, m, l or small, medium, large.
func ParseSize(v string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "s", "small":
		return Small, nil
	case "m", "medium", "":
		return Medium, nil
	case "l", "large":
		return Large, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, v)
	}
}

func (s Size) valid() bool { return s <= Large }
