// Package rotation implements a circular one-bit rotation of a whole byte
// stream. The stream is treated as one contiguous bit sequence, where the
// most-significant bit of the first byte is the leading bit and the
// least-significant bit of the last byte is the trailing bit. Rotating moves
// every bit one position toward the chosen end; the bit that falls off the
// stream wraps around to its opposite end.
package rotation

import "fmt"

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Direction selects which way the bit sequence is rotated.
type Direction uint8

const (
	// Left moves every bit toward the start of the stream; the leading bit
	// wraps around to the trailing position.
	Left Direction = iota

	// Right moves every bit toward the end of the stream; the trailing bit
	// wraps around to the leading position.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// ParseDirection parses a direction token as given on the command line.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unrecognized direction %q; expected: left or right", s)
}
