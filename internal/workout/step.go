package workout

// IntensityClass categorizes a step. The four values are the wire vocabulary
// TrainingPeaks accepts.
type IntensityClass string

const (
	IntensityActive   IntensityClass = "active"
	IntensityRest     IntensityClass = "rest"
	IntensityWarmUp   IntensityClass = "warmUp"
	IntensityCoolDown IntensityClass = "coolDown"
)

// Step is a named leaf activity inside a structure element. A step's length
// is a time or distance, never a repetition count, and it carries at least
// one intensity target. Steps are value objects; build one and don't mutate it.
type Step struct {
	Name           string         `json:"name"`
	Length         Length         `json:"length"`
	Targets        []Target       `json:"targets"`
	IntensityClass IntensityClass `json:"intensityClass"`
	OpenDuration   bool           `json:"openDuration"`
}

// PrimaryTarget returns the first target, or a zero target when the step has
// none. Builders reject target-less steps, so the zero case only shows up on
// hand-assembled values.
func (s Step) PrimaryTarget() Target {
	if len(s.Targets) == 0 {
		return Target{}
	}
	return s.Targets[0]
}

// IsWork reports whether the step counts as work rather than recovery.
func (s Step) IsWork() bool {
	return s.IntensityClass == IntensityActive || s.IntensityClass == IntensityWarmUp
}
