package reporting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"maritime-access-lab/internal/domain"
)

// RenderBucketMetricsCSV renders the flat MetricsResult table: one row per
// (target, constellation[, sensor]) bucket.
func RenderBucketMetricsCSV(rows []domain.BucketMetrics) string {
	var sb strings.Builder

	sb.WriteString("target,kind,sensor,constellation,detection_latency_sec,")
	sb.WriteString("revisit_min_sec,revisit_mean_sec,revisit_median_sec,revisit_max_sec,revisit_count,")
	sb.WriteString("coverage_percent,total_access_sec,pass_count\n")

	for _, m := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s,%s,%d,%s,%s,%d\n",
			m.Target,
			m.Kind,
			sensorLabel(m.Sensor),
			constellationLabel(m.Constellation),
			f(m.DetectionLatencySec),
			f(m.Revisit.Min),
			f(m.Revisit.Mean),
			f(m.Revisit.Median),
			f(m.Revisit.Max),
			m.Revisit.Count,
			f(m.CoveragePercent),
			f(m.TotalAccessSec),
			m.PassCount,
		))
	}

	return sb.String()
}

// RenderDetectionLatencyCSV renders per-ship sensor latency comparison in
// minutes.
func RenderDetectionLatencyCSV(rows []DetectionLatencyRow) string {
	var sb strings.Builder

	sb.WriteString("ship,constellation,sar_latency_min,optical_latency_min,fusion_latency_min,improvement_factor\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
			r.Ship,
			constellationLabel(r.Constellation),
			f(r.SARLatencyMin),
			f(r.OpticalLatencyMin),
			f(r.FusionLatencyMin),
			f(r.ImprovementFactor),
		))
	}

	return sb.String()
}

// RenderRevisitCSV renders revisit distributions in hours.
func RenderRevisitCSV(rows []RevisitRow) string {
	var sb strings.Builder

	sb.WriteString("ship,constellation,series,min_hr,mean_hr,median_hr,max_hr,num_gaps\n")

	const hr = 3600.0
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%d\n",
			r.Ship,
			constellationLabel(r.Constellation),
			r.Series,
			f(r.Stats.Min/hr),
			f(r.Stats.Mean/hr),
			f(r.Stats.Median/hr),
			f(r.Stats.Max/hr),
			r.Stats.Count,
		))
	}

	return sb.String()
}

// RenderFusionWindowsCSV renders simultaneous-coverage window statistics.
func RenderFusionWindowsCSV(rows []FusionWindowRow) string {
	var sb strings.Builder

	sb.WriteString("ship,constellation,count,total_duration_sec,mean_duration_sec,max_duration_sec\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%d,%s,%s,%s\n",
			r.Ship,
			constellationLabel(r.Constellation),
			r.Stats.Count,
			f(r.Stats.TotalSec),
			f(r.Stats.MeanSec),
			f(r.Stats.MaxSec),
		))
	}

	return sb.String()
}

// RenderFusionCoverageCSV renders single-sensor vs union coverage.
func RenderFusionCoverageCSV(rows []FusionCoverageRow) string {
	var sb strings.Builder

	sb.WriteString("ship,constellation,sar_coverage_pct,optical_coverage_pct,fusion_coverage_pct,fusion_gain\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
			r.Ship,
			constellationLabel(r.Constellation),
			f(r.SARCoveragePct),
			f(r.OpticalCoveragePct),
			f(r.FusionCoveragePct),
			f(r.FusionGain),
		))
	}

	return sb.String()
}

// RenderDeliveryLatencyCSV renders ship-to-ground-station delivery latency.
func RenderDeliveryLatencyCSV(rows []DeliveryLatencyRow) string {
	var sb strings.Builder

	sb.WriteString("ship,station,constellation,min_latency_sec,mean_latency_sec,max_latency_sec,num_samples\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%d\n",
			r.Ship,
			r.Station,
			constellationLabel(r.Constellation),
			f(r.Stats.Min),
			f(r.Stats.Mean),
			f(r.Stats.Max),
			r.Stats.Count,
		))
	}

	return sb.String()
}

// WriteFile writes rendered table content, creating parent directories.
// Failures are fatal for the metrics stage.
func WriteFile(dir, name, content string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// f formats a metric value; infinities render as "inf" so downstream
// tooling does not have to parse "+Inf".
func f(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%.6f", v)
}

func sensorLabel(s domain.Sensor) string {
	if s == domain.SensorNone {
		return "-"
	}
	return string(s)
}

func constellationLabel(size int) string {
	if size == domain.ConstellationNone {
		return "n/a"
	}
	return fmt.Sprintf("%d-sat", size)
}
