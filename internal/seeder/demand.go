package seeder

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/rishiiv/team-62/internal/config"
)

// DayCount is the realized order count for one calendar day.
type DayCount struct {
	Date  time.Time
	Count int
}

// PickPeakDays spreads the requested number of peak days evenly across the
// range, jitters each by up to ±5 days and deduplicates. Collisions are
// backfilled with random days so the result always has exactly cfg.PeakDays
// distinct dates inside the range.
func PickPeakDays(cfg *config.Config, rng *rand.Rand) []time.Time {
	if cfg.PeakDays <= 0 {
		return nil
	}

	days := allDays(cfg)
	seen := make(map[time.Time]bool)

	step := float64(len(days)) / float64(cfg.PeakDays+1)
	for k := 1; k <= cfg.PeakDays; k++ {
		center := int(math.Round(float64(k) * step))
		jitter := randInt(rng, -5, 5)
		idx := int(clamp(float64(center+jitter), 0, float64(len(days)-1)))
		seen[days[idx]] = true
	}

	for len(seen) < cfg.PeakDays {
		seen[days[rng.Intn(len(days))]] = true
	}

	peaks := make([]time.Time, 0, len(seen))
	for d := range seen {
		peaks = append(peaks, d)
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Before(peaks[j]) })
	return peaks[:cfg.PeakDays]
}

// DailyOrderCounts turns the seasonality curves into a realized per-day
// order count. Weekday and month multipliers shape the curve, log-normal
// noise roughens it and peak days get the large boost; the normalized
// expectation is then drawn through a Gaussian approximation of a Poisson.
func DailyOrderCounts(cfg *config.Config, rng *rand.Rand, peaks []time.Time) []DayCount {
	days := allDays(cfg)
	nDays := float64(len(days))

	approxOrders := math.Max(1, math.Round(cfg.TargetSales/cfg.AvgTicket))
	avgPerDay := approxOrders / nDays

	peakSet := make(map[time.Time]bool, len(peaks))
	for _, d := range peaks {
		peakSet[d] = true
	}

	weights := make([]float64, len(days))
	norm := 0.0
	for i, d := range days {
		mult := cfg.DowMult[mondayIndexed(d.Weekday())] * cfg.MonthMult[int(d.Month())-1]
		noise := math.Exp(rng.NormFloat64() * cfg.NoiseSigma)
		if peakSet[d] {
			mult *= cfg.PeakMultiplier
		}
		weights[i] = mult * noise
		norm += weights[i]
	}
	if norm == 0 {
		norm = 1.0
	}

	counts := make([]DayCount, len(days))
	for i, d := range days {
		expected := avgPerDay * weights[i] / (norm / nDays)
		lam := math.Max(0.1, expected)
		k := math.Round(lam + rng.NormFloat64()*math.Sqrt(lam))
		counts[i] = DayCount{Date: d, Count: int(math.Max(0, k))}
	}
	return counts
}

// mondayIndexed maps time.Weekday (Sunday=0) to the Mon..Sun multipliers.
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func allDays(cfg *config.Config) []time.Time {
	days := make([]time.Time, 0, cfg.Days())
	d := cfg.StartDate()
	for i := 0; i < cfg.Days(); i++ {
		days = append(days, d)
		d = d.AddDate(0, 0, 1)
	}
	return days
}
