package pipeline

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"maritime-access-lab/internal/domain"
	"maritime-access-lab/internal/metrics"
	"maritime-access-lab/internal/reporting"
	"maritime-access-lab/internal/store"
)

// MetricsStage computes every metric table from an interchange file and
// writes the CSV exports. Empty buckets produce sentinel-valued rows; a
// missing or unreadable interchange file fails the stage before any table
// is written.
type MetricsStage struct {
	StorePath     string
	ResultsDir    string
	ScenarioStart time.Time
	PeriodSeconds float64
	Logger        *log.Logger
}

// Output file names consumed by the reporting layer.
const (
	BucketMetricsFile    = "bucket_metrics.csv"
	DetectionLatencyFile = "detection_latency.csv"
	RevisitTimeFile      = "revisit_time.csv"
	FusionWindowsFile    = "fusion_windows.csv"
	FusionCoverageFile   = "fusion_coverage.csv"
	DeliveryLatencyFile  = "delivery_latency.csv"
)

// Run loads the store and writes all six tables.
func (m *MetricsStage) Run(ctx context.Context) error {
	s, err := store.Load(m.StorePath)
	if err != nil {
		return fmt.Errorf("load interchange: %w", err)
	}
	return m.Compute(ctx, s)
}

// Compute writes all tables from an already-loaded store.
func (m *MetricsStage) Compute(ctx context.Context, s *store.Store) error {
	logger := m.Logger
	if logger == nil {
		logger = log.Default()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tables := []struct {
		name    string
		content string
	}{
		{BucketMetricsFile, reporting.RenderBucketMetricsCSV(m.bucketRows(s))},
		{DetectionLatencyFile, reporting.RenderDetectionLatencyCSV(m.detectionRows(s))},
		{RevisitTimeFile, reporting.RenderRevisitCSV(m.revisitRows(s))},
		{FusionWindowsFile, reporting.RenderFusionWindowsCSV(m.fusionWindowRows(s))},
		{FusionCoverageFile, reporting.RenderFusionCoverageCSV(m.fusionCoverageRows(s))},
		{DeliveryLatencyFile, reporting.RenderDeliveryLatencyCSV(m.deliveryRows(s))},
	}

	for _, table := range tables {
		if err := reporting.WriteFile(m.ResultsDir, table.name, table.content); err != nil {
			return err
		}
		logger.Printf("wrote %s/%s", m.ResultsDir, table.name)
	}
	return nil
}

// bucketRows computes the flat MetricsResult table over every bucket,
// including empty constellation slots so the table stays internally
// consistent for the reporting layer.
func (m *MetricsStage) bucketRows(s *store.Store) []domain.BucketMetrics {
	var rows []domain.BucketMetrics
	for _, target := range s.Targets() {
		kind := s.Kind(target)
		for _, sensor := range s.SensorsFor(target) {
			for _, size := range s.ConstellationsFor(target, sensor) {
				events := s.Events(store.BucketKey{Target: target, Sensor: sensor, Constellation: size})
				rows = append(rows, metrics.ComputeBucket(
					target, kind, sensor, size, events, m.ScenarioStart, m.PeriodSeconds))
			}
		}
	}
	return rows
}

func (m *MetricsStage) detectionRows(s *store.Store) []reporting.DetectionLatencyRow {
	var rows []reporting.DetectionLatencyRow
	for _, ship := range m.targetsOfKind(s, domain.KindShip) {
		for _, size := range domain.ConstellationSizes {
			sar := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorSAR, Constellation: size})
			optical := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorOptical, Constellation: size})

			sarLat := metrics.DetectionLatency(sar, m.ScenarioStart)
			optLat := metrics.DetectionLatency(optical, m.ScenarioStart)
			fusionLat := math.Min(sarLat, optLat)

			improvement := 0.0
			if fusionLat > 0 && !math.IsInf(fusionLat, 1) && !math.IsInf(sarLat, 1) {
				improvement = sarLat / fusionLat
			}

			rows = append(rows, reporting.DetectionLatencyRow{
				Ship:              ship,
				Constellation:     size,
				SARLatencyMin:     sarLat / 60,
				OpticalLatencyMin: optLat / 60,
				FusionLatencyMin:  fusionLat / 60,
				ImprovementFactor: improvement,
			})
		}
	}
	return rows
}

func (m *MetricsStage) revisitRows(s *store.Store) []reporting.RevisitRow {
	var rows []reporting.RevisitRow
	for _, ship := range m.targetsOfKind(s, domain.KindShip) {
		for _, size := range domain.ConstellationSizes {
			sar := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorSAR, Constellation: size})
			optical := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorOptical, Constellation: size})

			rows = append(rows,
				reporting.RevisitRow{
					Ship:          ship,
					Constellation: size,
					Series:        "SAR",
					Stats:         metrics.RevisitTimes(sar),
				},
				reporting.RevisitRow{
					Ship:          ship,
					Constellation: size,
					Series:        "Fusion",
					Stats:         metrics.RevisitTimes(append(sar, optical...)),
				},
			)
		}
	}
	return rows
}

func (m *MetricsStage) fusionWindowRows(s *store.Store) []reporting.FusionWindowRow {
	var rows []reporting.FusionWindowRow
	for _, ship := range m.targetsOfKind(s, domain.KindShip) {
		for _, size := range domain.ConstellationSizes {
			sar := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorSAR, Constellation: size})
			optical := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorOptical, Constellation: size})

			windows := metrics.FusionWindowsSweep(sar, optical)
			rows = append(rows, reporting.FusionWindowRow{
				Ship:          ship,
				Constellation: size,
				Stats:         metrics.FusionWindowStats(windows),
			})
		}
	}
	return rows
}

func (m *MetricsStage) fusionCoverageRows(s *store.Store) []reporting.FusionCoverageRow {
	var rows []reporting.FusionCoverageRow
	for _, ship := range m.targetsOfKind(s, domain.KindShip) {
		for _, size := range domain.ConstellationSizes {
			sar := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorSAR, Constellation: size})
			optical := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorOptical, Constellation: size})

			sarCov := metrics.CoveragePercent(sar, m.PeriodSeconds)
			optCov := metrics.CoveragePercent(optical, m.PeriodSeconds)
			union := metrics.UnionCoveragePercent(append(sar, optical...), m.PeriodSeconds)

			rows = append(rows, reporting.FusionCoverageRow{
				Ship:               ship,
				Constellation:      size,
				SARCoveragePct:     sarCov,
				OpticalCoveragePct: optCov,
				FusionCoveragePct:  union,
				FusionGain:         metrics.FusionGain(sarCov, union),
			})
		}
	}
	return rows
}

func (m *MetricsStage) deliveryRows(s *store.Store) []reporting.DeliveryLatencyRow {
	stations := m.targetsOfKind(s, domain.KindGroundStation)

	var rows []reporting.DeliveryLatencyRow
	for _, ship := range m.targetsOfKind(s, domain.KindShip) {
		for _, station := range stations {
			for _, size := range domain.ConstellationSizes {
				sar := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorSAR, Constellation: size})
				optical := s.Events(store.BucketKey{Target: ship, Sensor: domain.SensorOptical, Constellation: size})
				relay := s.Events(store.BucketKey{Target: station, Sensor: domain.SensorNone, Constellation: size})

				rows = append(rows, reporting.DeliveryLatencyRow{
					Ship:          ship,
					Station:       station,
					Constellation: size,
					Stats:         metrics.DeliveryLatencyStats(append(sar, optical...), relay),
				})
			}
		}
	}
	return rows
}

// targetsOfKind lists targets of one kind, already sorted by Targets.
func (m *MetricsStage) targetsOfKind(s *store.Store, kind domain.TargetKind) []string {
	var targets []string
	for _, target := range s.Targets() {
		if s.Kind(target) == kind {
			targets = append(targets, target)
		}
	}
	return targets
}
