package model

import "fmt"

type Phase int

const (
	AwaitingFirstPoint Phase = iota + 1
	AwaitingSecondPoint
	GameOver
)

func (p Phase) Name() string {
	switch p {
	case AwaitingFirstPoint:
		return "AWAITING_FIRST_POINT"
	case AwaitingSecondPoint:
		return "AWAITING_SECOND_POINT"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

func (m *Model) Phase() Phase {
	switch {
	case m.over:
		return GameOver
	case len(m.selected) == 1:
		return AwaitingSecondPoint
	default:
		return AwaitingFirstPoint
	}
}

func (m *Model) Points() []Point {
	return append([]Point(nil), m.points...)
}

// Lines are in the order they were drawn.
func (m *Model) Lines() []Line {
	return append([]Line(nil), m.lines...)
}

func (m *Model) Pending() []*Triangle {
	return append([]*Triangle(nil), m.pending...)
}

func (m *Model) Completed() []*Triangle {
	return append([]*Triangle(nil), m.completed...)
}

func (m *Model) Selected() []Point {
	return append([]Point(nil), m.selected...)
}

func (m *Model) Players() []*Player {
	return append([]*Player(nil), m.players...)
}

func (m *Model) Current() *Player {
	return m.players[m.turn]
}

func (m *Model) Dice() int       { return m.dice }
func (m *Model) ThrowsLeft() int { return m.throwsLeft }
func (m *Model) Over() bool      { return m.over }
func (m *Model) Rules() RuleSet  { return m.rules }

func (m *Model) PointAt(row, col int) (Point, bool) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return Point{}, false
	}
	return m.points[row*m.cols+col], true
}

// HasLine reports whether anyone has drawn a line between p1 and p2.
func (m *Model) HasLine(p1, p2 Point) bool {
	_, ok := m.drawn[keyOf(p1, p2)]
	return ok
}

// Winner is the single top scorer, or nil when the top score is shared.
func (m *Model) Winner() *Player {
	var best *Player
	tie := false
	for _, p := range m.players {
		switch {
		case best == nil || p.Score > best.Score:
			best = p
			tie = false
		case p.Score == best.Score:
			tie = true
		}
	}
	if tie {
		return nil
	}
	return best
}

// HasValidMoves reports whether any line can still be drawn. The game does
// not end on its own when this turns false.
func (m *Model) HasValidMoves() bool {
	for i := range m.points {
		for j := i + 1; j < len(m.points); j++ {
			if m.IsValidLine(m.points[i], m.points[j]) {
				return true
			}
		}
	}
	return false
}
