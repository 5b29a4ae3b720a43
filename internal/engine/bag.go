package engine

import "math/rand"

// ShapeBag deals tetromino kinds using the 7-bag scheme: all seven kinds
// are shuffled and dealt out before the bag refills, so every kind appears
// exactly once per seven deals and none can starve. The sequence is
// infinite and deterministic for a given seed.
type ShapeBag struct {
	rng *rand.Rand
	bag []ShapeKind
}

// NewShapeBag creates a bag generator with its own seeded RNG, keeping
// piece sequences reproducible for a fixed seed.
func NewShapeBag(seed int64) *ShapeBag {
	return &ShapeBag{rng: rand.New(rand.NewSource(seed))}
}

// Next deals the next kind, refilling and reshuffling when the bag runs
// out. It never fails: the bag refills before it can go dry.
func (b *ShapeBag) Next() ShapeKind {
	if len(b.bag) == 0 {
		b.refill()
	}
	kind := b.bag[0]
	b.bag = b.bag[1:]
	return kind
}

// refill loads one of each kind and shuffles.
func (b *ShapeBag) refill() {
	bag := make([]ShapeKind, ShapeCount)
	for i := range bag {
		bag[i] = ShapeKind(i)
	}
	b.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	b.bag = bag
}
