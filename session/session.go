package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/triangles/model"
)

type SessionState int

const (
	SS_NEW SessionState = iota
	SS_PLAY
	SS_OVER
	SS_QUIT
)

func (s SessionState) Name() string {
	switch s {
	case SS_NEW:
		return "SS_NEW"
	case SS_PLAY:
		return "SS_PLAY"
	case SS_OVER:
		return "SS_OVER"
	case SS_QUIT:
		return "SS_QUIT"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

// Session owns one model and drives it from a single goroutine: poll input,
// apply events, draw.
type Session struct {
	ID      uuid.UUID
	State   SessionState
	Model   *model.Model
	Input   Input
	View    View
	Frames  int
	Results []Result

	log log.FieldLogger
}

func NewSession(m *model.Model, in Input, view View, logger log.FieldLogger) *Session {
	if logger == nil {
		logger = log.StandardLogger()
	}
	id := uuid.New()
	return &Session{
		ID:    id,
		State: SS_NEW,
		Model: m,
		Input: in,
		View:  view,
		log:   logger.WithField("session", id.String()),
	}
}

// Run loops until the input asks to quit or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("Session.Run start")
	s.State = SS_PLAY
	s.View.Draw(s.Model)
	for {
		select {
		case <-ctx.Done():
			s.log.Warnf("Session.Run cancelled after %d frames", s.Frames)
			return ctx.Err()
		default:
		}

		for _, ev := range s.Input.Poll(s.Model) {
			if s.apply(ev) {
				s.State = SS_QUIT
				s.log.Infof("Session.Run quit after %d games", len(s.Results))
				return nil
			}
		}
		if s.State == SS_PLAY && s.Model.Over() {
			s.State = SS_OVER
		}
		s.View.Draw(s.Model)
		s.Frames++
	}
}

// apply reports whether the loop should stop.
func (s *Session) apply(ev Event) bool {
	switch ev.Type {
	case EV_CLICK:
		s.Model.ProcessClick(ev.Pos)
	case EV_RESTART:
		s.finish()
		s.Model.Restart()
		s.State = SS_PLAY
	case EV_QUIT:
		s.finish()
		return true
	default:
		s.log.Warnf("event not expected:%s", ev.Type.Name())
	}
	return false
}

func (s *Session) finish() {
	m := s.Model
	r := Result{
		Game:      len(s.Results) + 1,
		Over:      m.Over(),
		Lines:     len(m.Lines()),
		Completed: len(m.Completed()),
		Scores:    make(map[string]int),
	}
	for _, p := range m.Players() {
		r.Scores[p.Name] = p.Score
	}
	if w := m.Winner(); w != nil {
		r.Winner = w.Name
	}
	s.Results = append(s.Results, r)
	s.log.WithFields(log.Fields{
		"game":      r.Game,
		"over":      r.Over,
		"lines":     r.Lines,
		"triangles": r.Completed,
		"winner":    r.Winner,
	}).Info("game finished")
}
