// Package classify maps raw export file names to result-store destinations.
package classify

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"maritime-access-lab/internal/domain"
)

// ErrUnrecognized is returned for file names matching no known family.
// Callers report and skip the file; it is never merged into a wrong bucket.
var ErrUnrecognized = errors.New("unrecognized access file name")

// Destination identifies one result-store bucket a parsed file feeds.
// A single file can feed several destinations (ship-to-EEZ transit files
// carry one shared series for every ship named in the file).
type Destination struct {
	Kind          domain.TargetKind
	Target        string
	Sensor        domain.Sensor
	Constellation int
}

// Naming conventions per target family, from the simulation export setup:
//
//	Ship1-Constellation6_SAR_Access.csv
//	Port_Mumbai-Walker12_Optical_Access.csv
//	EEZ_West-Constellation32_SAR_Access.csv
//	EEZ_West-Ship1_3_Access.csv
//	GS_Ahmedabad-Walker6_Access.csv
var (
	shipPattern    = regexp.MustCompile(`^(Ship\d+)-Constellation(\d+)_(SAR|Optical)_Access\.csv$`)
	portPattern    = regexp.MustCompile(`^Port_(\w+?)-Walker(\d+)_(SAR|Optical)_Access\.csv$`)
	eezPattern     = regexp.MustCompile(`^EEZ_(\w+?)-Constellation(\d+)_SAR_Access\.csv$`)
	transitPattern = regexp.MustCompile(`^EEZ_(\w+?)-Ship([\d_]+)_Access\.csv$`)
	gsPattern      = regexp.MustCompile(`^GS_(\w+?)-Walker(\d+)_Access\.csv$`)
)

// Classify derives the destination buckets for one file name.
func Classify(filename string) ([]Destination, error) {
	if m := shipPattern.FindStringSubmatch(filename); m != nil {
		size, err := constellation(m[2])
		if err != nil {
			return nil, err
		}
		return []Destination{{
			Kind:          domain.KindShip,
			Target:        m[1],
			Sensor:        domain.Sensor(m[3]),
			Constellation: size,
		}}, nil
	}

	if m := portPattern.FindStringSubmatch(filename); m != nil {
		size, err := constellation(m[2])
		if err != nil {
			return nil, err
		}
		return []Destination{{
			Kind:          domain.KindPort,
			Target:        m[1],
			Sensor:        domain.Sensor(m[3]),
			Constellation: size,
		}}, nil
	}

	if m := eezPattern.FindStringSubmatch(filename); m != nil {
		size, err := constellation(m[2])
		if err != nil {
			return nil, err
		}
		// SAR-only exports: over areas this large the Optical series is
		// identical, so the bucket is filed sensor-agnostic.
		return []Destination{{
			Kind:          domain.KindEEZ,
			Target:        m[1],
			Sensor:        domain.SensorNone,
			Constellation: size,
		}}, nil
	}

	if m := transitPattern.FindStringSubmatch(filename); m != nil {
		zone := m[1]
		var dests []Destination
		for _, num := range strings.Split(m[2], "_") {
			if num == "" {
				continue
			}
			if _, err := strconv.Atoi(num); err != nil {
				return nil, fmt.Errorf("%w: %s (bad ship number %q)", ErrUnrecognized, filename, num)
			}
			dests = append(dests, Destination{
				Kind:          domain.KindTransit,
				Target:        zone + "/Ship" + num,
				Sensor:        domain.SensorNone,
				Constellation: domain.ConstellationNone,
			})
		}
		if len(dests) == 0 {
			return nil, fmt.Errorf("%w: %s (no ship numbers)", ErrUnrecognized, filename)
		}
		return dests, nil
	}

	if m := gsPattern.FindStringSubmatch(filename); m != nil {
		size, err := constellation(m[2])
		if err != nil {
			return nil, err
		}
		return []Destination{{
			Kind:          domain.KindGroundStation,
			Target:        m[1],
			Sensor:        domain.SensorNone,
			Constellation: size,
		}}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnrecognized, filename)
}

func constellation(s string) (int, error) {
	size, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad constellation size %q", ErrUnrecognized, s)
	}
	return size, nil
}
