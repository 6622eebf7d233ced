// Package generator builds randomized card orders.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/kanaflash/internal/model"
)

// Generator produces randomized card sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a uniformly shuffled copy of cards.
func (g *Generator) Shuffle(cards []model.Kana) []model.Kana {
	out := make([]model.Kana, len(cards))
	copy(out, cards)
	g.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Pick returns n shuffled cards, or all of them when n is out of range.
func (g *Generator) Pick(cards []model.Kana, n int) []model.Kana {
	out := g.Shuffle(cards)
	if n <= 0 || n >= len(out) {
		return out
	}
	return out[:n]
}
