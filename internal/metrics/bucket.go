package metrics

import (
	"time"

	"maritime-access-lab/internal/domain"
)

// ComputeBucket assembles the full per-bucket metrics row. scenarioStart
// anchors detection latency; periodSec is the coverage reference period.
func ComputeBucket(target string, kind domain.TargetKind, sensor domain.Sensor, constellation int,
	events []domain.AccessEvent, scenarioStart time.Time, periodSec float64) domain.BucketMetrics {

	return domain.BucketMetrics{
		Target:              target,
		Kind:                kind,
		Sensor:              sensor,
		Constellation:       constellation,
		DetectionLatencySec: DetectionLatency(events, scenarioStart),
		Revisit:             RevisitTimes(events),
		CoveragePercent:     CoveragePercent(events, periodSec),
		TotalAccessSec:      TotalAccessSeconds(events),
		PassCount:           len(events),
	}
}
