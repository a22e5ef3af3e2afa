package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"maritime-access-lab/internal/domain"
)

// Interchange layout: target → series (sensor, constellation) → passes.
// Paths ending in ".gz" are transparently gzip-compressed. A read or write
// failure here is fatal for the surrounding pipeline stage.

const timestampLayout = time.RFC3339Nano

type fileEnvelope struct {
	Targets []targetRecord `json:"targets"`
}

type targetRecord struct {
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Series []seriesRecord `json:"series"`
}

type seriesRecord struct {
	Sensor        string       `json:"sensor,omitempty"`
	Constellation int          `json:"constellation"`
	Passes        []passRecord `json:"passes"`
}

type passRecord struct {
	SatelliteID int     `json:"satellite_id"`
	PassNum     int     `json:"pass_num"`
	StartTime   string  `json:"start_time"`
	StopTime    string  `json:"stop_time"`
	DurationSec float64 `json:"duration_sec"`
	UnixStart   float64 `json:"unix_start"`
	UnixStop    float64 `json:"unix_stop"`
}

// Save writes the store to path in the interchange format, creating parent
// directories as needed. Output ordering is deterministic.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create interchange dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create interchange file: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.envelope()); err != nil {
		return fmt.Errorf("encode interchange: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("flush interchange: %w", err)
		}
	}
	return f.Close()
}

// Load reads a store previously written by Save.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interchange file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("read interchange gzip header: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	var envelope fileEnvelope
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode interchange: %w", err)
	}

	s := New()
	for _, target := range envelope.Targets {
		for _, series := range target.Series {
			events := make([]domain.AccessEvent, 0, len(series.Passes))
			for _, p := range series.Passes {
				start, err := time.Parse(timestampLayout, p.StartTime)
				if err != nil {
					return nil, fmt.Errorf("interchange %s: bad start time %q: %w", target.Name, p.StartTime, err)
				}
				stop, err := time.Parse(timestampLayout, p.StopTime)
				if err != nil {
					return nil, fmt.Errorf("interchange %s: bad stop time %q: %w", target.Name, p.StopTime, err)
				}
				events = append(events, domain.AccessEvent{
					SatelliteID: p.SatelliteID,
					PassNum:     p.PassNum,
					Start:       start.UTC(),
					Stop:        stop.UTC(),
					DurationSec: p.DurationSec,
				})
			}
			key := BucketKey{
				Target:        target.Name,
				Sensor:        domain.Sensor(series.Sensor),
				Constellation: series.Constellation,
			}
			s.Add(key, domain.TargetKind(target.Kind), events)
		}
	}
	return s, nil
}

// envelope builds the serializable form with sorted targets and series.
func (s *Store) envelope() fileEnvelope {
	var envelope fileEnvelope
	for _, name := range s.Targets() {
		record := targetRecord{
			Name: name,
			Kind: string(s.kinds[name]),
		}
		for _, sensor := range s.SensorsFor(name) {
			for _, size := range s.ConstellationsFor(name, sensor) {
				key := BucketKey{Target: name, Sensor: sensor, Constellation: size}
				events, ok := s.buckets[key]
				if !ok {
					continue
				}
				series := seriesRecord{
					Sensor:        string(sensor),
					Constellation: size,
					Passes:        make([]passRecord, 0, len(events)),
				}
				for _, e := range events {
					series.Passes = append(series.Passes, passRecord{
						SatelliteID: e.SatelliteID,
						PassNum:     e.PassNum,
						StartTime:   e.Start.UTC().Format(timestampLayout),
						StopTime:    e.Stop.UTC().Format(timestampLayout),
						DurationSec: e.DurationSec,
						UnixStart:   unixSeconds(e.Start),
						UnixStop:    unixSeconds(e.Stop),
					})
				}
				record.Series = append(record.Series, series)
			}
		}
		envelope.Targets = append(envelope.Targets, record)
	}
	return envelope
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
