package workout

// Unit is the unit of a Length. TrainingPeaks accepts second, meter and
// repetition on the wire; the other units exist for authoring convenience
// and are normalized before upload.
type Unit string

const (
	UnitSecond     Unit = "second"
	UnitMinute     Unit = "minute"
	UnitHour       Unit = "hour"
	UnitMeter      Unit = "meter"
	UnitKilometer  Unit = "kilometer"
	UnitMile       Unit = "mile"
	UnitRepetition Unit = "repetition"
)

const metersPerMile = 1609.344

// Length is a value with a unit. A length is convertible to seconds or to
// meters depending on its unit, never both; repetition lengths are a bare
// count and convert to neither.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// IsTimeUnit reports whether u measures time.
func IsTimeUnit(u Unit) bool {
	return u == UnitSecond || u == UnitMinute || u == UnitHour
}

// IsDistanceUnit reports whether u measures distance.
func IsDistanceUnit(u Unit) bool {
	return u == UnitMeter || u == UnitKilometer || u == UnitMile
}

// IsRepetitionUnit reports whether u is a repeat count.
func IsRepetitionUnit(u Unit) bool {
	return u == UnitRepetition
}

// ToSeconds converts a time-unit length to seconds. The second return is
// false when the unit is not a time unit.
func (l Length) ToSeconds() (float64, bool) {
	switch l.Unit {
	case UnitSecond:
		return l.Value, true
	case UnitMinute:
		return l.Value * 60, true
	case UnitHour:
		return l.Value * 3600, true
	default:
		return 0, false
	}
}

// ToMeters converts a distance-unit length to meters. The second return is
// false when the unit is not a distance unit.
func (l Length) ToMeters() (float64, bool) {
	switch l.Unit {
	case UnitMeter:
		return l.Value, true
	case UnitKilometer:
		return l.Value * 1000, true
	case UnitMile:
		return l.Value * metersPerMile, true
	default:
		return 0, false
	}
}

// Equal reports whether two lengths have the same value and the same unit.
// There is no cross-unit normalization: 1 minute != 60 seconds here.
func (l Length) Equal(other Length) bool {
	return l.Value == other.Value && l.Unit == other.Unit
}

// Seconds builds a second-denominated length.
func Seconds(v float64) Length { return Length{Value: v, Unit: UnitSecond} }

// Minutes builds a minute-denominated length.
func Minutes(v float64) Length { return Length{Value: v, Unit: UnitMinute} }

// Hours builds an hour-denominated length.
func Hours(v float64) Length { return Length{Value: v, Unit: UnitHour} }

// Meters builds a meter-denominated length.
func Meters(v float64) Length { return Length{Value: v, Unit: UnitMeter} }

// Kilometers builds a kilometer-denominated length.
func Kilometers(v float64) Length { return Length{Value: v, Unit: UnitKilometer} }

// Miles builds a mile-denominated length.
func Miles(v float64) Length { return Length{Value: v, Unit: UnitMile} }

// Repetitions builds a repeat-count length.
func Repetitions(n int) Length { return Length{Value: float64(n), Unit: UnitRepetition} }
