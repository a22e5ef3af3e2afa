package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maritime-access-lab/internal/domain"
)

var base = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func mkEvent(satID, passNum int, startSec, stopSec float64) domain.AccessEvent {
	return domain.AccessEvent{
		SatelliteID: satID,
		PassNum:     passNum,
		Start:       base.Add(time.Duration(startSec * float64(time.Second))),
		Stop:        base.Add(time.Duration(stopSec * float64(time.Second))),
		DurationSec: stopSec - startSec,
	}
}

func TestStore_AddAndEvents(t *testing.T) {
	s := New()
	key := BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 6}
	s.Add(key, domain.KindShip, []domain.AccessEvent{mkEvent(0, 1, 0, 600)})
	s.Add(key, domain.KindShip, []domain.AccessEvent{mkEvent(1, 1, 1000, 1300)})

	events := s.Events(key)
	require.Len(t, events, 2)
	assert.Equal(t, domain.KindShip, s.Kind("Ship1"))
	assert.Equal(t, 2, s.PassCount())
	assert.Equal(t, 1, s.BucketCount())
}

func TestStore_EventsReturnsCopy(t *testing.T) {
	s := New()
	key := BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 6}
	s.Add(key, domain.KindShip, []domain.AccessEvent{mkEvent(0, 1, 0, 600)})

	events := s.Events(key)
	events[0].PassNum = 99

	again := s.Events(key)
	assert.Equal(t, 1, again[0].PassNum, "caller mutation must not reach the store")
}

func TestStore_AbsentBucket(t *testing.T) {
	s := New()
	key := BucketKey{Target: "Ship9", Sensor: domain.SensorSAR, Constellation: 6}
	assert.Nil(t, s.Events(key))
	assert.Equal(t, domain.TargetKind(""), s.Kind("Ship9"))
}

func TestStore_TargetsSorted(t *testing.T) {
	s := New()
	s.Add(BucketKey{Target: "Mumbai", Sensor: domain.SensorSAR, Constellation: 6}, domain.KindPort, nil)
	s.Add(BucketKey{Target: "Ship2", Sensor: domain.SensorSAR, Constellation: 6}, domain.KindShip, nil)
	s.Add(BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 6}, domain.KindShip, nil)

	assert.Equal(t, []string{"Mumbai", "Ship1", "Ship2"}, s.Targets())
}

func TestStore_SensorsFor(t *testing.T) {
	s := New()
	s.Add(BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 6}, domain.KindShip, nil)
	s.Add(BucketKey{Target: "Ship1", Sensor: domain.SensorOptical, Constellation: 6}, domain.KindShip, nil)
	s.Add(BucketKey{Target: "Ahmedabad", Sensor: domain.SensorNone, Constellation: 6}, domain.KindGroundStation, nil)

	assert.Equal(t, []domain.Sensor{domain.SensorOptical, domain.SensorSAR}, s.SensorsFor("Ship1"))
	assert.Equal(t, []domain.Sensor{domain.SensorNone}, s.SensorsFor("Ahmedabad"))
	assert.Empty(t, s.SensorsFor("Ship9"))
}

func TestStore_ConstellationsForPadsFixedDomain(t *testing.T) {
	s := New()
	// Only the 12-satellite series was exported for this ship.
	s.Add(BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 12}, domain.KindShip, nil)

	sizes := s.ConstellationsFor("Ship1", domain.SensorSAR)
	assert.Equal(t, []int{6, 12, 32}, sizes, "absent sizes are reported so tables stay consistent")
}

func TestStore_ConstellationsForTransit(t *testing.T) {
	s := New()
	s.Add(BucketKey{Target: "West/Ship1", Sensor: domain.SensorNone, Constellation: domain.ConstellationNone},
		domain.KindTransit, nil)

	sizes := s.ConstellationsFor("West/Ship1", domain.SensorNone)
	assert.Equal(t, []int{domain.ConstellationNone}, sizes)
}

func TestStore_ConstellationsForUnknownPair(t *testing.T) {
	s := New()
	assert.Nil(t, s.ConstellationsFor("Ship1", domain.SensorSAR))
}

func roundTrip(t *testing.T, path string) {
	t.Helper()

	s := New()
	s.Add(BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 6}, domain.KindShip,
		[]domain.AccessEvent{
			mkEvent(0, 1, 0, 600.25),
			mkEvent(1, 2, 4000, 4300),
		})
	s.Add(BucketKey{Target: "Ship1", Sensor: domain.SensorOptical, Constellation: 6}, domain.KindShip,
		[]domain.AccessEvent{mkEvent(0, 1, 100, 250)})
	s.Add(BucketKey{Target: "West/Ship1", Sensor: domain.SensorNone, Constellation: domain.ConstellationNone},
		domain.KindTransit,
		[]domain.AccessEvent{mkEvent(0, 1, 9000, 9500)})

	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, s.Targets(), loaded.Targets())
	assert.Equal(t, s.PassCount(), loaded.PassCount())
	assert.Equal(t, domain.KindShip, loaded.Kind("Ship1"))
	assert.Equal(t, domain.KindTransit, loaded.Kind("West/Ship1"))

	key := BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 6}
	assert.Equal(t, s.Events(key), loaded.Events(key))
}

func TestInterchange_RoundTrip(t *testing.T) {
	roundTrip(t, t.TempDir()+"/store.json")
}

func TestInterchange_RoundTripGzip(t *testing.T) {
	roundTrip(t, t.TempDir()+"/store.json.gz")
}

func TestInterchange_LoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/absent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open interchange file")
}

func TestInterchange_SaveCreatesParentDirs(t *testing.T) {
	path := t.TempDir() + "/nested/deeper/store.json"
	s := New()
	s.Add(BucketKey{Target: "Ship1", Sensor: domain.SensorSAR, Constellation: 6}, domain.KindShip,
		[]domain.AccessEvent{mkEvent(0, 1, 0, 600)})
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.PassCount())
}
