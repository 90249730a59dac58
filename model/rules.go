package model

import (
	"fmt"
	"strings"
)

// RuleSet decides which lines may be drawn and what completed triangles are
// worth.
type RuleSet interface {
	Name() string
	// Allows is asked only about distinct points with no line between them.
	Allows(m *Model, p1, p2 Point) bool
	// Award turns a number of completed triangles into points and bonus throws.
	Award(completed int) (points, bonus int)
}

// Strict allows only neighbouring points and at most one diagonal per unit
// cell. Triangles give bonus throws but no points.
type Strict struct{}

func (Strict) Name() string { return "strict" }

func (Strict) Allows(m *Model, p1, p2 Point) bool {
	dr := abs(p1.Row - p2.Row)
	dc := abs(p1.Col - p2.Col)
	if dr > 1 || dc > 1 {
		return false
	}
	if dr == 1 && dc == 1 {
		c1, ok1 := m.PointAt(p1.Row, p2.Col)
		c2, ok2 := m.PointAt(p2.Row, p1.Col)
		if ok1 && ok2 && m.HasLine(c1, c2) {
			return false
		}
	}
	return true
}

func (Strict) Award(completed int) (int, int) {
	return 0, completed
}

// Classic lets any two points be joined. Each triangle scores a point and a
// bonus throw.
type Classic struct{}

func (Classic) Name() string { return "classic" }

func (Classic) Allows(*Model, Point, Point) bool {
	return true
}

func (Classic) Award(completed int) (int, int) {
	return completed, completed
}

// RulesByName resolves "strict" or "classic", case-insensitively.
func RulesByName(name string) (RuleSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "strict":
		return Strict{}, nil
	case "classic":
		return Classic{}, nil
	default:
		return nil, fmt.Errorf("unknown rules %q", name)
	}
}

// IsValidLine reports whether the current player may draw a line from p1 to p2.
func (m *Model) IsValidLine(p1, p2 Point) bool {
	if p1.Cell() == p2.Cell() {
		return false
	}
	if m.HasLine(p1, p2) {
		return false
	}
	return m.rules.Allows(m, p1, p2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
