package workout

// Target is an intensity target as a min/max pair on a single physical
// scale, typically percent of threshold. Min and max equal means a
// single-point target.
type Target struct {
	MinValue float64 `json:"minValue"`
	MaxValue float64 `json:"maxValue"`
}

// SingleTarget builds a point target where min and max coincide.
func SingleTarget(v float64) Target {
	return Target{MinValue: v, MaxValue: v}
}

// RangeTarget builds a min/max target.
func RangeTarget(min, max float64) Target {
	return Target{MinValue: min, MaxValue: max}
}

// IsSingle reports whether the target is a single point.
func (t Target) IsSingle() bool { return t.MinValue == t.MaxValue }

// IsRange reports whether the target spans a range.
func (t Target) IsRange() bool { return t.MinValue < t.MaxValue }

// Midpoint returns the center of the target range.
func (t Target) Midpoint() float64 { return (t.MinValue + t.MaxValue) / 2 }

// Width returns the span of the target range, zero for a point target.
func (t Target) Width() float64 { return t.MaxValue - t.MinValue }

// Contains reports whether v falls inside the target, inclusive on both ends.
func (t Target) Contains(v float64) bool {
	return v >= t.MinValue && v <= t.MaxValue
}
