package metrics

import (
	"math"

	"maritime-access-lab/internal/domain"
)

// DeliveryLatencies computes, for each source observation, the wait until
// the first relay window opening at or after the observation ends (ship
// pass → ground-station pass). Source events with no later relay window
// are undeliverable in this scenario window and contribute no sample.
func DeliveryLatencies(source, relay []domain.AccessEvent) []float64 {
	if len(source) == 0 || len(relay) == 0 {
		return nil
	}

	sortedSource := make([]domain.AccessEvent, len(source))
	copy(sortedSource, source)
	domain.SortByStop(sortedSource)

	sortedRelay := make([]domain.AccessEvent, len(relay))
	copy(sortedRelay, relay)
	domain.SortByStart(sortedRelay)

	var latencies []float64
	j := 0
	for _, s := range sortedSource {
		for j < len(sortedRelay) && sortedRelay[j].Start.Before(s.Stop) {
			j++
		}
		if j == len(sortedRelay) {
			break
		}
		latencies = append(latencies, sortedRelay[j].Start.Sub(s.Stop).Seconds())
	}
	return latencies
}

// DeliveryLatencyStats aggregates per-event delivery latencies. With no
// matches at all, Min/Mean/Max are +Inf and Count is zero.
func DeliveryLatencyStats(source, relay []domain.AccessEvent) domain.LatencyStats {
	latencies := DeliveryLatencies(source, relay)
	if len(latencies) == 0 {
		return domain.LatencyStats{
			Min:  math.Inf(1),
			Mean: math.Inf(1),
			Max:  math.Inf(1),
		}
	}

	stats := domain.LatencyStats{
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
		Count: len(latencies),
	}
	for _, l := range latencies {
		if l < stats.Min {
			stats.Min = l
		}
		if l > stats.Max {
			stats.Max = l
		}
	}
	stats.Mean = computeMean(latencies)
	return stats
}
