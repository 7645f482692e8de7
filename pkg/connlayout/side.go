package connlayout

import (
	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
)

// Side identifies one edge of a node rectangle where connection anchors can
// be placed.
type Side uint8

const (
	// Left anchors connections on the left edge, vertically centered.
	Left Side = iota
	// Right anchors connections on the right edge, vertically centered.
	Right
	// Top anchors connections at the horizontal midpoint of the top edge.
	Top
	// Bottom anchors connections at the horizontal midpoint of the bottom edge.
	Bottom
)

// sideCount is the number of defined sides, used for range checks.
const sideCount = 4

// Valid reports whether s is one of the four defined sides.
func (s Side) Valid() bool {
	return s < sideCount
}

// String returns the canonical label for the side, as used in menu options
// and serialized layouts.
func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Opposite returns the side across the rectangle: Left and Right swap, as do
// Top and Bottom. Invalid sides are returned unchanged.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	case Bottom:
		return Top
	default:
		return s
	}
}

// Anchor returns the side's fractional anchor within a node rectangle, with
// (0, 0) the top-left corner and (1, 1) the bottom-right.
func (s Side) Anchor() (fx, fy float64) {
	switch s {
	case Left:
		return 0, 0.5
	case Right:
		return 1, 0.5
	case Top:
		return 0.5, 0
	case Bottom:
		return 0.5, 1
	default:
		return 0, 0.5
	}
}

// fallback returns the side used when a stored layout holds an out-of-range
// value for the given direction: inputs land on the left, outputs on the
// right.
func fallback(d host.Direction) Side {
	if d == host.Output {
		return Right
	}
	return Left
}

// ParseSide converts a canonical label back into a Side. Labels are
// case-sensitive; anything but the four known labels is rejected with an
// invalid layout error.
func ParseSide(label string) (Side, error) {
	switch label {
	case "Left":
		return Left, nil
	case "Right":
		return Right, nil
	case "Top":
		return Top, nil
	case "Bottom":
		return Bottom, nil
	default:
		return Left, errors.New(errors.ErrCodeInvalidLayout, "unknown side %q", label)
	}
}
