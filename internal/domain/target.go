package domain

// Sensor identifies the sensing modality of an access series.
// Sensor-agnostic buckets (EEZ areas, transits, ground stations) use SensorNone.
type Sensor string

const (
	SensorNone    Sensor = ""
	SensorSAR     Sensor = "SAR"
	SensorOptical Sensor = "Optical"
)

// TargetKind classifies a surveillance target family.
type TargetKind string

const (
	KindShip          TargetKind = "ship"
	KindPort          TargetKind = "port"
	KindEEZ           TargetKind = "eez"
	KindTransit       TargetKind = "transit"
	KindGroundStation TargetKind = "groundstation"
)

// ConstellationSizes is the fixed domain of simulated fleet configurations.
var ConstellationSizes = []int{6, 12, 32}

// ConstellationNone marks buckets whose source files carry no fleet size
// (ship-to-EEZ transit series).
const ConstellationNone = 0
