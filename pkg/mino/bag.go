package mino

import (
	"fmt"
	"math/rand"
)

// Source picks the kind of every new piece.
type Source interface {
	Take() PieceType
}

// UniformSource draws every kind with equal probability.
type UniformSource struct {
	r *rand.Rand
}

func NewUniformSource(seed int64) *UniformSource {
	return &UniformSource{r: rand.New(rand.NewSource(seed))}
}

func (u *UniformSource) Take() PieceType {
	return AllPieceTypes[u.r.Intn(len(AllPieceTypes))]
}

// Bag deals every kind once, in shuffled order, before reshuffling.
type Bag struct {
	Types    []PieceType
	Original []PieceType

	randomizer *rand.Rand

	i int
}

func NewBag(seed int64, types []PieceType) (*Bag, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("failed to create bag: no piece types")
	}

	b := &Bag{Original: types, randomizer: rand.New(rand.NewSource(seed))}

	b.shuffle()

	return b, nil
}

func (b *Bag) Take() PieceType {
	t := b.Types[b.i]
	if b.i == len(b.Types)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return t
}

func (b *Bag) shuffle() {
	if b.Types == nil {
		b.Types = make([]PieceType, len(b.Original))
	}
	copy(b.Types, b.Original)

	b.randomizer.Shuffle(len(b.Types), func(i, j int) { b.Types[i], b.Types[j] = b.Types[j], b.Types[i] })
}

// NewSource returns the randomizer registered under name: "uniform" or "bag".
func NewSource(name string, seed int64) (Source, error) {
	switch name {
	case "", "uniform":
		return NewUniformSource(seed), nil
	case "bag":
		return NewBag(seed, AllPieceTypes)
	default:
		return nil, fmt.Errorf("unknown randomizer %q", name)
	}
}
