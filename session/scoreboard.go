package session

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/triangles/model"
)

// Scoreboard is a View that writes what a player would see on screen to the
// log: whose turn it is, the dice, new triangles and the final result.
type Scoreboard struct {
	log log.FieldLogger

	first     *model.Player
	current   *model.Player
	completed int
	over      bool
}

func NewScoreboard(logger log.FieldLogger) *Scoreboard {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Scoreboard{log: logger}
}

func (s *Scoreboard) Draw(m *model.Model) {
	players := m.Players()
	if len(players) > 0 && players[0] != s.first {
		// new game, or restart
		s.first = players[0]
		s.current = nil
		s.completed = 0
		s.over = false
		s.log.WithField("rules", m.Rules().Name()).Infof("new game on %d points", len(m.Points()))
	}

	if done := m.Completed(); len(done) > s.completed {
		for _, t := range done[s.completed:] {
			s.log.WithFields(log.Fields{
				"player": t.Owner().Name,
				"a":      t.Points[0].Cell(),
				"b":      t.Points[1].Cell(),
				"c":      t.Points[2].Cell(),
			}).Info("triangle completed")
		}
		s.completed = len(done)
	}

	if cur := m.Current(); cur != s.current && !m.Over() {
		s.current = cur
		s.log.WithFields(log.Fields{
			"player": cur.Name,
			"dice":   m.Dice(),
			"throws": m.ThrowsLeft(),
		}).Info("turn")
	}

	if m.Over() && !s.over {
		s.over = true
		fields := log.Fields{}
		for _, p := range players {
			fields[p.Name] = p.Score
		}
		if w := m.Winner(); w != nil {
			s.log.WithFields(fields).Infof("%s wins", w.Name)
		} else {
			s.log.WithFields(fields).Info("it is a tie")
		}
	}
}
