package seeder

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// weightedInt is one candidate for weightedChoice.
type weightedInt struct {
	Value  int
	Weight float64
}

// weightedChoice draws one value with probability proportional to its
// weight. A nonpositive total weight is treated as 1.0 so the draw stays
// defined, and if floating point accumulation never reaches the pick the
// last candidate wins.
func weightedChoice(rng *rand.Rand, items []weightedInt) int {
	if len(items) == 0 {
		return 0
	}

	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	if total <= 0 {
		total = 1.0
	}

	pick := rng.Float64() * total
	acc := 0.0
	for _, it := range items {
		acc += it.Weight
		if pick <= acc {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}

// makeUUID derives a v4 UUID from the seeded stream so ids are reproducible.
func makeUUID(rng *rand.Rand) uuid.UUID {
	// rand.Rand.Read never fails.
	id, _ := uuid.NewRandomFromReader(rng)
	return id
}

// randInt draws uniformly from [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
