// Package reporting renders computed metric tables as delimited text for
// the downstream reporting layer. It is a mechanical consumer: all numbers
// arrive precomputed, durations in seconds, coverage in percent.
package reporting

import "maritime-access-lab/internal/domain"

// DetectionLatencyRow compares per-sensor detection latency for one ship
// and constellation; fusion latency is whichever sensor saw the ship first.
type DetectionLatencyRow struct {
	Ship              string
	Constellation     int
	SARLatencyMin     float64
	OpticalLatencyMin float64
	FusionLatencyMin  float64
	ImprovementFactor float64
}

// RevisitRow reports the revisit distribution for one (ship, constellation,
// series) combination; Series is "SAR" or "Fusion" (SAR+Optical merged).
type RevisitRow struct {
	Ship          string
	Constellation int
	Series        string
	Stats         domain.RevisitStats
}

// FusionWindowRow reports simultaneous SAR+Optical coverage windows.
type FusionWindowRow struct {
	Ship          string
	Constellation int
	Stats         domain.WindowStats
}

// FusionCoverageRow compares single-sensor coverage against the exact
// union coverage of both sensors combined.
type FusionCoverageRow struct {
	Ship               string
	Constellation      int
	SARCoveragePct     float64
	OpticalCoveragePct float64
	FusionCoveragePct  float64
	FusionGain         float64
}

// DeliveryLatencyRow reports observation-to-downlink latency between one
// ship's passes and one ground station's passes.
type DeliveryLatencyRow struct {
	Ship          string
	Station       string
	Constellation int
	Stats         domain.LatencyStats
}
