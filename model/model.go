package model

import (
	"image"
	"image/color"

	log "github.com/sirupsen/logrus"
)

// Cell is a grid coordinate on the board.
type Cell struct {
	Row, Col int
}

func (c Cell) less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Point is a board intersection. It never changes once the board is built.
type Point struct {
	X, Y     int
	Row, Col int
	Radius   int
}

func (p Point) Cell() Cell {
	return Cell{Row: p.Row, Col: p.Col}
}

// Hit reports whether pos falls inside the point's hit circle.
func (p Point) Hit(pos image.Point) bool {
	dx := p.X - pos.X
	dy := p.Y - pos.Y
	return dx*dx+dy*dy <= p.Radius*p.Radius
}

// Pos is the pixel centre of the point.
func (p Point) Pos() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// LineKey identifies a line by its two cells only, in canonical order.
type LineKey struct {
	A, B Cell
}

func keyOf(p1, p2 Point) LineKey {
	a, b := p1.Cell(), p2.Cell()
	if b.less(a) {
		a, b = b, a
	}
	return LineKey{A: a, B: b}
}

type Line struct {
	Points [2]Point
	Player *Player
}

func NewLine(p1, p2 Point, player *Player) Line {
	if p2.Cell().less(p1.Cell()) {
		p1, p2 = p2, p1
	}
	return Line{Points: [2]Point{p1, p2}, Player: player}
}

// Key drops the player: two lines over the same points share a key.
func (l Line) Key() LineKey {
	return LineKey{A: l.Points[0].Cell(), B: l.Points[1].Cell()}
}

type Triangle struct {
	Points [3]Point
	owner  *Player
}

func NewTriangle(p1, p2, p3 Point) *Triangle {
	ps := [3]Point{p1, p2, p3}
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && ps[j].Cell().less(ps[j-1].Cell()); j-- {
			ps[j], ps[j-1] = ps[j-1], ps[j]
		}
	}
	return &Triangle{Points: ps}
}

// Edges are the three lines that must be drawn to complete the triangle.
func (t *Triangle) Edges() [3]LineKey {
	return [3]LineKey{
		keyOf(t.Points[0], t.Points[1]),
		keyOf(t.Points[1], t.Points[2]),
		keyOf(t.Points[0], t.Points[2]),
	}
}

// Owner is nil until some player completes the triangle.
func (t *Triangle) Owner() *Player {
	return t.owner
}

// claim sets the owner once. Later calls leave it unchanged.
func (t *Triangle) claim(p *Player) bool {
	if t.owner != nil {
		return false
	}
	t.owner = p
	return true
}

type Player struct {
	Name  string
	Color color.RGBA
	Score int
	Lines []Line
}

// PlayerSpec is what a player is rebuilt from on restart.
type PlayerSpec struct {
	Name  string
	Color color.RGBA
}

// Options configure a new model. Rules defaults to Strict, Dice to NewDice(1)
// and Log to the standard logrus logger.
type Options struct {
	Width, Height    int
	MarginX, MarginY int
	Rows, Cols       int
	PointRadius      int
	Players          []PlayerSpec
	Rules            RuleSet
	Dice             Dice
	Log              log.FieldLogger
}

// Model is the whole game state. It is not safe for concurrent use; one
// host loop owns it.
type Model struct {
	points    []Point
	lines     []Line
	drawn     map[LineKey]struct{}
	pending   []*Triangle
	completed []*Triangle
	selected  []Point

	specs   []PlayerSpec
	players []*Player
	turn    int

	dice       int
	throwsLeft int
	over       bool

	rows, cols int
	rules      RuleSet
	roller     Dice
	log        log.FieldLogger
}
