package domain

import (
	"sort"
	"time"
)

// AccessEvent is one satellite pass over one target.
// Start/Stop are absolute UTC instants with Stop > Start. DurationSec is
// derived from Stop-Start at parse time; the source-reported duration is
// only used as an integrity check and is not carried.
type AccessEvent struct {
	SatelliteID int       // 0-based index of the satellite within its source file
	PassNum     int       // 1-based access id from the source block
	Start       time.Time // UTC
	Stop        time.Time // UTC
	DurationSec float64
}

// SortByStart sorts events by start time ascending, breaking ties by stop
// time then pass number so that ordering is deterministic.
func SortByStart(events []AccessEvent) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		if !events[i].Stop.Equal(events[j].Stop) {
			return events[i].Stop.Before(events[j].Stop)
		}
		return events[i].PassNum < events[j].PassNum
	})
}

// SortByStop sorts events by stop time ascending.
func SortByStop(events []AccessEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Stop.Before(events[j].Stop)
	})
}
