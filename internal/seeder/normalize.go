package seeder

import (
	"math"

	"github.com/google/uuid"
)

// Revenue normalization bounds. The single global factor is clamped so
// rescaling can never distort per-item prices by more than ±25%, and scaling
// is skipped entirely when the generated total already lands within 2% of
// the target.
const (
	minScaleFactor = 0.75
	maxScaleFactor = 1.25
	scaleTolerance = 0.02
)

// NormalizeRevenue rescales every order-line unit price by one bounded
// global factor so aggregate revenue approaches targetSales, then rebuilds
// each order total from its scaled lines to keep the total/lines invariant
// exact. It returns the factor that was applied (1 when the generated total
// was already within tolerance).
func NormalizeRevenue(targetSales float64, orders []Order, lines []OrderLine) float64 {
	current := 0.0
	for i := range orders {
		current += orders[i].Total
	}
	if current == 0 {
		current = 1.0
	}

	factor := clamp(targetSales/current, minScaleFactor, maxScaleFactor)
	if math.Abs(1-factor) <= scaleTolerance {
		return 1.0
	}

	totals := make(map[uuid.UUID]float64, len(orders))
	for i := range lines {
		lines[i].UnitPrice = round2(lines[i].UnitPrice * factor)
		totals[lines[i].OrderID] += lines[i].UnitPrice * float64(lines[i].Quantity)
	}
	for i := range orders {
		orders[i].Total = round2(totals[orders[i].ID])
	}
	return factor
}
