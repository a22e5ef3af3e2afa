// Package metrics computes time-interval statistics over access-event
// sequences. All functions are pure: they take sequences already resolved
// from the result store, sort internally where order matters, and never
// perform I/O. Missing or empty inputs degrade to sentinel values (+Inf
// latencies, zero counts) so that callers aggregating many buckets never
// abort on a single empty one.
package metrics

import (
	"math"
	"sort"
	"time"

	"maritime-access-lab/internal/domain"
)

// DetectionLatency returns the seconds from scenarioStart to the earliest
// pass start, clamped to be non-negative; a pass starting fractionally
// before the nominal epoch due to rounding must not report negative
// latency. An empty sequence returns +Inf ("never detected").
func DetectionLatency(events []domain.AccessEvent, scenarioStart time.Time) float64 {
	if len(events) == 0 {
		return math.Inf(1)
	}
	earliest := events[0].Start
	for _, e := range events[1:] {
		if e.Start.Before(earliest) {
			earliest = e.Start
		}
	}
	latency := earliest.Sub(scenarioStart).Seconds()
	if latency < 0 {
		return 0
	}
	return latency
}

// RevisitTimes summarizes gaps between consecutive passes. Events are
// sorted by start time internally, so input order is irrelevant.
// Non-positive gaps are discarded: overlapping or back-to-back passes are
// continuous coverage, not a revisit delay. With fewer than two events or
// no positive gaps the result is {+Inf, +Inf, +Inf, 0, 0}.
func RevisitTimes(events []domain.AccessEvent) domain.RevisitStats {
	noInfo := domain.RevisitStats{
		Min:    math.Inf(1),
		Mean:   math.Inf(1),
		Median: math.Inf(1),
	}
	if len(events) < 2 {
		return noInfo
	}

	sorted := make([]domain.AccessEvent, len(events))
	copy(sorted, events)
	domain.SortByStart(sorted)

	var gaps []float64
	for i := 0; i < len(sorted)-1; i++ {
		gap := sorted[i+1].Start.Sub(sorted[i].Stop).Seconds()
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}
	if len(gaps) == 0 {
		return noInfo
	}

	sortedGaps := make([]float64, len(gaps))
	copy(sortedGaps, gaps)
	sort.Float64s(sortedGaps)

	return domain.RevisitStats{
		Min:    sortedGaps[0],
		Mean:   computeMean(gaps),
		Median: computePercentile(sortedGaps, 0.50),
		Max:    sortedGaps[len(sortedGaps)-1],
		Count:  len(gaps),
	}
}

// CoveragePercent is the summed pass duration as a percentage of the
// period, by default one day. Deliberately uncapped: overlapping passes
// from multiple satellites can exceed 100%, which signals redundant
// coverage rather than an error.
func CoveragePercent(events []domain.AccessEvent, periodSec float64) float64 {
	if periodSec <= 0 {
		return 0
	}
	return 100 * TotalAccessSeconds(events) / periodSec
}

// UnionCoveragePercent is the exact set-coverage percentage: overlapping
// passes are merged before summing, so the result never exceeds 100% for a
// period fully containing the events. This replaces the earlier additive
// second-sensor discount heuristic for multi-sensor coverage.
func UnionCoveragePercent(events []domain.AccessEvent, periodSec float64) float64 {
	if periodSec <= 0 || len(events) == 0 {
		return 0
	}

	sorted := make([]domain.AccessEvent, len(events))
	copy(sorted, events)
	domain.SortByStart(sorted)

	total := 0.0
	curStart, curStop := sorted[0].Start, sorted[0].Stop
	for _, e := range sorted[1:] {
		if e.Start.After(curStop) {
			total += curStop.Sub(curStart).Seconds()
			curStart, curStop = e.Start, e.Stop
			continue
		}
		if e.Stop.After(curStop) {
			curStop = e.Stop
		}
	}
	total += curStop.Sub(curStart).Seconds()

	return 100 * total / periodSec
}

// TotalAccessSeconds sums event durations.
func TotalAccessSeconds(events []domain.AccessEvent) float64 {
	total := 0.0
	for _, e := range events {
		total += e.DurationSec
	}
	return total
}

// computeMean is the arithmetic mean, zero for empty input.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computePercentile uses linear interpolation over a pre-sorted slice.
// p is the percentile as a fraction (0.50 = median).
func computePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
