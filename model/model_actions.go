package model

import (
	"image"

	log "github.com/sirupsen/logrus"
)

func NewModel(opts Options) *Model {
	m := &Model{
		specs:  opts.Players,
		rows:   opts.Rows,
		cols:   opts.Cols,
		rules:  opts.Rules,
		roller: opts.Dice,
		log:    opts.Log,
	}
	if m.rules == nil {
		m.rules = Strict{}
	}
	if m.roller == nil {
		m.roller = NewDice(1)
	}
	if m.log == nil {
		m.log = log.StandardLogger()
	}
	m.points = initializeBoard(opts)
	m.reset()
	return m
}

func initializeBoard(opts Options) []Point {
	dx := float64(opts.Width-2*opts.MarginX) / float64(opts.Cols-1)
	dy := float64(opts.Height-2*opts.MarginY) / float64(opts.Rows-1)

	points := make([]Point, 0, opts.Rows*opts.Cols)
	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			points = append(points, Point{
				X:      int(float64(opts.MarginX) + float64(c)*dx),
				Y:      int(float64(opts.MarginY) + float64(r)*dy),
				Row:    r,
				Col:    c,
				Radius: opts.PointRadius,
			})
		}
	}
	return points
}

func generatePossibleTriangles(points []Point) []*Triangle {
	triangles := make([]*Triangle, 0)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				if collinear(points[i], points[j], points[k]) {
					continue
				}
				triangles = append(triangles, NewTriangle(points[i], points[j], points[k]))
			}
		}
	}
	return triangles
}

// Restart starts a new game on the same board.
func (m *Model) Restart() {
	m.log.Info("restarting game")
	m.reset()
}

func (m *Model) reset() {
	m.players = make([]*Player, 0, len(m.specs))
	for _, s := range m.specs {
		m.players = append(m.players, &Player{Name: s.Name, Color: s.Color})
	}
	m.turn = 0
	m.lines = nil
	m.drawn = make(map[LineKey]struct{})
	m.completed = nil
	m.selected = nil
	m.pending = generatePossibleTriangles(m.points)
	m.log.WithField("triangles", len(m.pending)).Debug("generated possible triangles")
	m.over = false
	m.rollDice()
}

func (m *Model) rollDice() {
	m.dice = m.roller.Roll()
	m.throwsLeft = m.dice
}

// ProcessClick feeds one click into the selection buffer and resolves the
// candidate line once two points are selected.
func (m *Model) ProcessClick(pos image.Point) {
	if m.over {
		return
	}
	for _, p := range m.points {
		if !p.Hit(pos) {
			continue
		}
		if !m.isSelected(p) {
			m.selected = append(m.selected, p)
		}
		if len(m.selected) == 2 {
			m.resolve(m.selected[0], m.selected[1])
			m.selected = nil
		}
		break
	}
}

func (m *Model) isSelected(p Point) bool {
	for _, s := range m.selected {
		if s.Cell() == p.Cell() {
			return true
		}
	}
	return false
}

func (m *Model) resolve(p1, p2 Point) {
	if !m.IsValidLine(p1, p2) {
		m.log.WithFields(log.Fields{"from": p1.Cell(), "to": p2.Cell()}).Debug("line rejected")
		return
	}
	player := m.Current()
	line := NewLine(p1, p2, player)
	m.lines = append(m.lines, line)
	m.drawn[line.Key()] = struct{}{}
	player.Lines = append(player.Lines, line)
	m.throwsLeft--

	completed := m.checkNewTriangles(player)
	if completed > 0 {
		points, bonus := m.rules.Award(completed)
		player.Score += points
		m.throwsLeft += bonus
		m.log.WithFields(log.Fields{
			"player":    player.Name,
			"triangles": completed,
			"points":    points,
			"bonus":     bonus,
		}).Debug("triangles completed")
	}

	if m.throwsLeft == 0 {
		m.changeTurn()
	}
}

func (m *Model) checkNewTriangles(player *Player) int {
	completed := 0
	for _, t := range m.pending {
		if m.isComplete(t) && t.claim(player) {
			m.completed = append(m.completed, t)
			completed++
		}
	}
	if completed == 0 {
		return 0
	}

	remaining := make([]*Triangle, 0, len(m.pending)-completed)
	for _, t := range m.pending {
		if t.Owner() == nil {
			remaining = append(remaining, t)
		}
	}
	m.pending = remaining
	if len(m.pending) == 0 {
		m.over = true
		m.log.Info("game over, every triangle is claimed")
	}
	return completed
}

func (m *Model) isComplete(t *Triangle) bool {
	for _, e := range t.Edges() {
		if _, ok := m.drawn[e]; !ok {
			return false
		}
	}
	return true
}

func (m *Model) changeTurn() {
	if m.over {
		return
	}
	m.turn = (m.turn + 1) % len(m.players)
	m.rollDice()
	m.log.WithFields(log.Fields{
		"player": m.Current().Name,
		"dice":   m.dice,
	}).Debug("turn changed")
}
