package session

import (
	"image"
	"math/rand"

	"github.com/zucenko/triangles/model"
)

// Bot is a headless Input that plays random valid lines, one click per
// frame. When a game ends, or no line can be drawn any more, it restarts
// until Games games are done and then quits.
type Bot struct {
	Games int

	rng    *rand.Rand
	played int
	queue  []image.Point
}

func NewBot(seed int64, games int) *Bot {
	if games < 1 {
		games = 1
	}
	return &Bot{
		Games: games,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (b *Bot) Poll(m *model.Model) []Event {
	if len(b.queue) > 0 {
		pos := b.queue[0]
		b.queue = b.queue[1:]
		return []Event{Click(pos)}
	}

	if m.Over() || !m.HasValidMoves() {
		b.played++
		if b.played >= b.Games {
			return []Event{{Type: EV_QUIT}}
		}
		return []Event{{Type: EV_RESTART}}
	}

	moves := validMoves(m)
	pick := moves[b.rng.Intn(len(moves))]
	if b.rng.Intn(2) == 1 {
		pick[0], pick[1] = pick[1], pick[0]
	}
	b.queue = append(b.queue, pick[1].Pos())
	return []Event{Click(pick[0].Pos())}
}

func validMoves(m *model.Model) [][2]model.Point {
	points := m.Points()
	moves := make([][2]model.Point, 0)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if m.IsValidLine(points[i], points[j]) {
				moves = append(moves, [2]model.Point{points[i], points[j]})
			}
		}
	}
	return moves
}
