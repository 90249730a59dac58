package session

import (
	"fmt"
	"image"

	"github.com/zucenko/triangles/model"
)

type EventType int

const (
	EV_CLICK EventType = iota + 1
	EV_RESTART
	EV_QUIT
)

func (e EventType) Name() string {
	switch e {
	case EV_CLICK:
		return "CLICK"
	case EV_RESTART:
		return "RESTART"
	case EV_QUIT:
		return "QUIT"
	default:
		return fmt.Sprintf("N/A(%d)", e)
	}
}

// Event is one input from the presentation side. Pos is only set for clicks.
type Event struct {
	Type EventType
	Pos  image.Point
}

func Click(pos image.Point) Event {
	return Event{Type: EV_CLICK, Pos: pos}
}

// Input is polled once per frame, like a window system's event queue.
type Input interface {
	Poll(m *model.Model) []Event
}

// View is handed the model after every frame. It must only read it.
type View interface {
	Draw(m *model.Model)
}

// Result summarises one finished or abandoned game.
type Result struct {
	Game      int
	Over      bool
	Lines     int
	Completed int
	Scores    map[string]int
	Winner    string
}
