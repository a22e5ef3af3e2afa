package reporting

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"maritime-access-lab/internal/domain"
)

func TestRenderBucketMetricsCSV(t *testing.T) {
	rows := []domain.BucketMetrics{
		{
			Target:              "Ship1",
			Kind:                domain.KindShip,
			Sensor:              domain.SensorSAR,
			Constellation:       6,
			DetectionLatencySec: 300,
			Revisit:             domain.RevisitStats{Min: 3000, Mean: 3000, Median: 3000, Max: 3000, Count: 1},
			CoveragePercent:     1.041667,
			TotalAccessSec:      900,
			PassCount:           2,
		},
	}

	out := RenderBucketMetricsCSV(rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "target,kind,sensor,constellation,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Ship1,ship,SAR,6-sat,300.000000,") {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestRenderBucketMetricsCSV_Sentinels(t *testing.T) {
	rows := []domain.BucketMetrics{
		{
			Target:              "West/Ship1",
			Kind:                domain.KindTransit,
			Sensor:              domain.SensorNone,
			Constellation:       domain.ConstellationNone,
			DetectionLatencySec: math.Inf(1),
			Revisit:             domain.RevisitStats{Min: math.Inf(1), Mean: math.Inf(1), Median: math.Inf(1)},
		},
	}

	out := RenderBucketMetricsCSV(rows)
	if !strings.Contains(out, "West/Ship1,transit,-,n/a,inf,inf,inf,inf,0.000000,0,") {
		t.Errorf("sentinel row not rendered as expected:\n%s", out)
	}
}

func TestRenderRevisitCSV_HoursConversion(t *testing.T) {
	rows := []RevisitRow{
		{
			Ship:          "Ship1",
			Constellation: 12,
			Series:        "SAR",
			Stats:         domain.RevisitStats{Min: 3600, Mean: 7200, Median: 7200, Max: 10800, Count: 2},
		},
	}
	out := RenderRevisitCSV(rows)
	if !strings.Contains(out, "Ship1,12-sat,SAR,1.000000,2.000000,2.000000,3.000000,2") {
		t.Errorf("hours conversion wrong:\n%s", out)
	}
}

func TestRenderDeliveryLatencyCSV_InfSentinels(t *testing.T) {
	rows := []DeliveryLatencyRow{
		{
			Ship:          "Ship1",
			Station:       "Ahmedabad",
			Constellation: 6,
			Stats:         domain.LatencyStats{Min: math.Inf(1), Mean: math.Inf(1), Max: math.Inf(1)},
		},
	}
	out := RenderDeliveryLatencyCSV(rows)
	if !strings.Contains(out, "Ship1,Ahmedabad,6-sat,inf,inf,inf,0") {
		t.Errorf("expected inf sentinels:\n%s", out)
	}
}

func TestWriteFile_CreatesDirAndContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "nested")
	if err := WriteFile(dir, "out.csv", "a,b\n1,2\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("content mismatch: %q", data)
	}
}
