package metrics

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"maritime-access-lab/internal/domain"
)

func sortWindows(windows []Window) {
	sort.Slice(windows, func(i, j int) bool {
		if !windows[i].Start.Equal(windows[j].Start) {
			return windows[i].Start.Before(windows[j].Start)
		}
		return windows[i].Stop.Before(windows[j].Stop)
	})
}

func TestFusionWindows_SimpleOverlap(t *testing.T) {
	sar := []domain.AccessEvent{ev(0, 100)}
	optical := []domain.AccessEvent{ev(50, 150)}

	windows := FusionWindows(sar, optical)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if !windows[0].Start.Equal(epoch.Add(50e9)) || !windows[0].Stop.Equal(epoch.Add(100e9)) {
		t.Errorf("expected window [50,100], got [%v,%v]", windows[0].Start, windows[0].Stop)
	}
	if windows[0].DurationSec() != 50 {
		t.Errorf("expected 50s duration, got %v", windows[0].DurationSec())
	}
}

func TestFusionWindows_Symmetric(t *testing.T) {
	a := []domain.AccessEvent{ev(0, 100), ev(200, 260)}
	b := []domain.AccessEvent{ev(80, 220)}

	ab := FusionWindows(a, b)
	ba := FusionWindows(b, a)
	sortWindows(ab)
	sortWindows(ba)
	if len(ab) != len(ba) {
		t.Fatalf("asymmetric window counts: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i] != ba[i] {
			t.Errorf("window %d differs: %+v vs %+v", i, ab[i], ba[i])
		}
	}
}

func TestFusionWindows_DegenerateTouchExcluded(t *testing.T) {
	// Touching endpoints produce a zero-length intersection, not a window.
	sar := []domain.AccessEvent{ev(0, 100)}
	optical := []domain.AccessEvent{ev(100, 200)}
	if windows := FusionWindows(sar, optical); len(windows) != 0 {
		t.Errorf("expected no window for touching intervals, got %d", len(windows))
	}
}

func TestFusionWindows_EmptySeries(t *testing.T) {
	if windows := FusionWindows(nil, []domain.AccessEvent{ev(0, 100)}); len(windows) != 0 {
		t.Errorf("expected no windows with an empty series, got %d", len(windows))
	}
}

func TestFusionWindowsSweep_MatchesPairwise_OverlappingSeries(t *testing.T) {
	// Events within one series overlap when several satellites see the
	// target at once; every pairwise intersection must still be emitted.
	sar := []domain.AccessEvent{ev(0, 100), ev(0, 100)}
	optical := []domain.AccessEvent{ev(50, 60)}

	want := FusionWindows(sar, optical)
	got := FusionWindowsSweep(sar, optical)
	if len(got) != 2 || len(want) != 2 {
		t.Fatalf("expected 2 windows from both, got sweep=%d pairwise=%d", len(got), len(want))
	}
}

func TestFusionWindowsSweep_MatchesPairwise_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		randSeries := func(n int) []domain.AccessEvent {
			events := make([]domain.AccessEvent, 0, n)
			for i := 0; i < n; i++ {
				start := rng.Float64() * 5000
				events = append(events, ev(start, start+1+rng.Float64()*800))
			}
			return events
		}
		a := randSeries(1 + rng.Intn(12))
		b := randSeries(1 + rng.Intn(12))

		want := FusionWindows(a, b)
		got := FusionWindowsSweep(a, b)
		sortWindows(want)
		sortWindows(got)
		if len(want) != len(got) {
			t.Fatalf("trial %d: window counts differ, pairwise=%d sweep=%d", trial, len(want), len(got))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("trial %d: window %d differs: %+v vs %+v", trial, i, want[i], got[i])
			}
		}
	}
}

func TestFusionWindowStats_Empty(t *testing.T) {
	stats := FusionWindowStats(nil)
	if stats != (domain.WindowStats{}) {
		t.Errorf("expected zero stats for no windows, got %+v", stats)
	}
}

func TestFusionWindowStats_Aggregation(t *testing.T) {
	windows := []Window{
		{Start: epoch, Stop: epoch.Add(50e9)},
		{Start: epoch.Add(100e9), Stop: epoch.Add(130e9)},
	}
	stats := FusionWindowStats(windows)
	if stats.Count != 2 || stats.TotalSec != 80 || stats.MeanSec != 40 || stats.MaxSec != 50 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestFusionDetectionLatency_TakesEarlierSensor(t *testing.T) {
	sar := []domain.AccessEvent{ev(900, 1200)}
	optical := []domain.AccessEvent{ev(300, 500)}
	if got := FusionDetectionLatency(sar, optical, epoch); got != 300 {
		t.Errorf("expected 300s, got %v", got)
	}
}

func TestFusionDetectionLatency_BothEmpty(t *testing.T) {
	if got := FusionDetectionLatency(nil, nil, epoch); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
}

func TestFusionGain(t *testing.T) {
	if got := FusionGain(2, 3); got != 1.5 {
		t.Errorf("expected gain 1.5, got %v", got)
	}
	if got := FusionGain(0, 3); got != 0 {
		t.Errorf("expected 0 gain for zero baseline, got %v", got)
	}
}
