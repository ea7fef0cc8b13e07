package platform

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is a window size in pixels.
type Size struct {
	Width, Height uint32
}

// Position is a screen coordinate of the window's top-left corner.
type Position struct {
	X, Y int32
}

func (s Size) String() string     { return fmt.Sprintf("%dx%d", s.Width, s.Height) }
func (p Position) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// ParseSize parses a "WIDTHxHEIGHT" string into a Size.
func ParseSize(s string) (Size, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	vals := make([]uint32, 2)
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Size{}, fmt.Errorf("invalid size %q: %w", s, err)
		}
		vals[i] = uint32(v)
	}
	return Size{Width: vals[0], Height: vals[1]}, nil
}

// ParsePosition parses an "x,y" string into a Position. Negative values are
// allowed since monitors left of or above the primary have negative origins.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid position %q: expected x,y", s)
	}
	vals := make([]int32, 2)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
		}
		vals[i] = int32(v)
	}
	return Position{X: vals[0], Y: vals[1]}, nil
}

// ClampInt32 converts a toolkit int to int32, saturating at the bounds.
func ClampInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// ClampUint32 converts a toolkit int to uint32, saturating at the bounds.
func ClampUint32(v int) uint32 {
	switch {
	case v < 0:
		return 0
	case uint64(v) > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
