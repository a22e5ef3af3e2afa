// Package store holds the normalized result store: the single source of
// truth handed from the parsing stage to the metrics engine.
package store

import (
	"sort"

	"maritime-access-lab/internal/domain"
)

// BucketKey addresses one event sequence: target identity, sensor type
// (SensorNone for sensor-agnostic targets) and constellation size
// (ConstellationNone for transit series).
type BucketKey struct {
	Target        string
	Sensor        domain.Sensor
	Constellation int
}

// Store maps buckets to ordered access-event sequences. It is built once
// by the parsing stage and consumed read-only afterwards; accessors return
// copies so callers cannot mutate the canonical sequences.
type Store struct {
	buckets map[BucketKey][]domain.AccessEvent
	kinds   map[string]domain.TargetKind
}

// New creates an empty store.
func New() *Store {
	return &Store{
		buckets: make(map[BucketKey][]domain.AccessEvent),
		kinds:   make(map[string]domain.TargetKind),
	}
}

// Add appends events to a bucket, registering the target's kind. Events
// are copied; input row order is preserved (metric functions sort
// internally, see internal/metrics).
func (s *Store) Add(key BucketKey, kind domain.TargetKind, events []domain.AccessEvent) {
	s.kinds[key.Target] = kind
	s.buckets[key] = append(s.buckets[key], events...)
}

// Events returns a copy of the bucket's sequence; nil for an absent bucket.
// An empty or absent bucket is a valid "no data" condition, not an error.
func (s *Store) Events(key BucketKey) []domain.AccessEvent {
	events, ok := s.buckets[key]
	if !ok {
		return nil
	}
	out := make([]domain.AccessEvent, len(events))
	copy(out, events)
	return out
}

// Kind returns the registered target kind ("" if the target is unknown).
func (s *Store) Kind(target string) domain.TargetKind {
	return s.kinds[target]
}

// Targets lists all target identities, sorted.
func (s *Store) Targets() []string {
	targets := make([]string, 0, len(s.kinds))
	for t := range s.kinds {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}

// SensorsFor lists the sensors seen for a target, sorted, with SensorNone
// first when present.
func (s *Store) SensorsFor(target string) []domain.Sensor {
	seen := make(map[domain.Sensor]struct{})
	for key := range s.buckets {
		if key.Target == target {
			seen[key.Sensor] = struct{}{}
		}
	}
	sensors := make([]domain.Sensor, 0, len(seen))
	for sensor := range seen {
		sensors = append(sensors, sensor)
	}
	sort.Slice(sensors, func(i, j int) bool { return sensors[i] < sensors[j] })
	return sensors
}

// ConstellationsFor lists the constellation sizes to report for a
// (target, sensor) pair. Buckets keyed by a real fleet size always report
// the full fixed domain, absent sizes included, so downstream tables stay
// internally consistent; transit series report only ConstellationNone.
func (s *Store) ConstellationsFor(target string, sensor domain.Sensor) []int {
	seen := make(map[int]struct{})
	for key := range s.buckets {
		if key.Target == target && key.Sensor == sensor {
			seen[key.Constellation] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	if _, ok := seen[domain.ConstellationNone]; ok {
		return []int{domain.ConstellationNone}
	}
	for _, size := range domain.ConstellationSizes {
		seen[size] = struct{}{}
	}
	sizes := make([]int, 0, len(seen))
	for size := range seen {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// PassCount is the total number of events across all buckets.
func (s *Store) PassCount() int {
	n := 0
	for _, events := range s.buckets {
		n += len(events)
	}
	return n
}

// BucketCount is the number of non-empty buckets.
func (s *Store) BucketCount() int {
	return len(s.buckets)
}
