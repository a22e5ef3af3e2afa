package metrics

import (
	"math"
	"time"

	"maritime-access-lab/internal/domain"
)

// Window is a non-degenerate interval during which two sensing modalities
// observed the same target simultaneously.
type Window struct {
	Start time.Time
	Stop  time.Time
}

// DurationSec is the window length in seconds.
func (w Window) DurationSec() float64 {
	return w.Stop.Sub(w.Start).Seconds()
}

// FusionWindows computes every pairwise intersection between the two
// series, keeping only non-degenerate overlaps (start strictly before
// stop). This is the O(n·m) reference implementation: per-target event
// counts are small, and it remains the oracle FusionWindowsSweep is
// verified against.
func FusionWindows(a, b []domain.AccessEvent) []Window {
	var windows []Window
	for _, ea := range a {
		for _, eb := range b {
			start := laterOf(ea.Start, eb.Start)
			stop := earlierOf(ea.Stop, eb.Stop)
			if start.Before(stop) {
				windows = append(windows, Window{Start: start, Stop: stop})
			}
		}
	}
	return windows
}

// FusionWindowsSweep computes the same multiset of windows as
// FusionWindows via a sorted two-pointer merge, near O(n+m) plus the
// number of overlaps. Events inside one series may themselves overlap
// (different satellites), so each a-event scans the b-events whose start
// precedes its stop; b-events that ended before the current a-event
// started can never overlap a later a-event and are dropped for good.
func FusionWindowsSweep(a, b []domain.AccessEvent) []Window {
	sortedA := make([]domain.AccessEvent, len(a))
	copy(sortedA, a)
	domain.SortByStart(sortedA)
	sortedB := make([]domain.AccessEvent, len(b))
	copy(sortedB, b)
	domain.SortByStart(sortedB)

	var windows []Window
	lo := 0
	for _, ea := range sortedA {
		for lo < len(sortedB) && !sortedB[lo].Stop.After(ea.Start) {
			lo++
		}
		for j := lo; j < len(sortedB) && sortedB[j].Start.Before(ea.Stop); j++ {
			start := laterOf(ea.Start, sortedB[j].Start)
			stop := earlierOf(ea.Stop, sortedB[j].Stop)
			if start.Before(stop) {
				windows = append(windows, Window{Start: start, Stop: stop})
			}
		}
	}
	return windows
}

// FusionWindowStats aggregates a window set. Empty input yields all zeros:
// "no simultaneous coverage" is a valid result, not an error.
func FusionWindowStats(windows []Window) domain.WindowStats {
	if len(windows) == 0 {
		return domain.WindowStats{}
	}
	stats := domain.WindowStats{Count: len(windows)}
	for _, w := range windows {
		d := w.DurationSec()
		stats.TotalSec += d
		if d > stats.MaxSec {
			stats.MaxSec = d
		}
	}
	stats.MeanSec = stats.TotalSec / float64(len(windows))
	return stats
}

// FusionDetectionLatency is the latency of the earlier of the two sensors:
// whichever modality sees the target first detects it.
func FusionDetectionLatency(sar, optical []domain.AccessEvent, scenarioStart time.Time) float64 {
	return math.Min(
		DetectionLatency(sar, scenarioStart),
		DetectionLatency(optical, scenarioStart),
	)
}

// FusionGain is the ratio of exact union coverage of both series combined
// to the single-sensor baseline coverage, zero when the baseline is zero.
func FusionGain(baseline, combined float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return combined / baseline
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
