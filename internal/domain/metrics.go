package domain

// RevisitStats summarizes positive gaps between consecutive passes.
// With fewer than two events, or no positive gaps, Min/Mean/Median are +Inf
// and Max/Count are zero ("no revisit information"); callers that need to
// tell "continuously covered" apart from "too few passes" check PassCount
// on the surrounding BucketMetrics.
type RevisitStats struct {
	Min    float64
	Mean   float64
	Median float64
	Max    float64
	Count  int
}

// WindowStats summarizes fusion windows (simultaneous SAR+Optical coverage).
type WindowStats struct {
	Count    int
	TotalSec float64
	MeanSec  float64
	MaxSec   float64
}

// LatencyStats summarizes per-event delivery latencies. All three values
// are +Inf when no source event could be matched to a relay window.
type LatencyStats struct {
	Min   float64
	Mean  float64
	Max   float64
	Count int
}

// BucketMetrics is the per-(target, constellation[, sensor]) metrics row
// consumed by the reporting layer. Durations are seconds, coverage is
// percent of the scenario period and deliberately uncapped: overlapping
// passes above 100% signal redundant coverage, not an error.
type BucketMetrics struct {
	Target              string
	Kind                TargetKind
	Sensor              Sensor
	Constellation       int
	DetectionLatencySec float64
	Revisit             RevisitStats
	CoveragePercent     float64
	TotalAccessSec      float64
	PassCount           int
}
