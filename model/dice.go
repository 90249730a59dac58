package model

import "math/rand"

// Faces is the highest value a throw of the dice can show.
const Faces = 3

type Dice interface {
	// Roll returns a value in [1, Faces].
	Roll() int
}

type randDice struct {
	rng *rand.Rand
}

// NewDice returns dice that always produce the same rolls for the same seed.
func NewDice(seed int64) Dice {
	return &randDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *randDice) Roll() int {
	return d.rng.Intn(Faces) + 1
}
