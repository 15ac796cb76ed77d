package workout

// Preset step and element constructors for the common interval vocabulary.
// All presets emit second-denominated lengths so their output feeds the
// timing engine directly.

// WarmUpStep builds a warm-up step ramping through easy intensity.
func WarmUpStep(seconds float64) Step {
	return Step{
		Name:           "Warm up",
		Length:         Seconds(seconds),
		Targets:        []Target{RangeTarget(40, 60)},
		IntensityClass: IntensityWarmUp,
	}
}

// CoolDownStep builds a cool-down step at easy intensity.
func CoolDownStep(seconds float64) Step {
	return Step{
		Name:           "Cool down",
		Length:         Seconds(seconds),
		Targets:        []Target{RangeTarget(40, 55)},
		IntensityClass: IntensityCoolDown,
	}
}

// IntervalStep builds a work step at the given percent-of-threshold target.
func IntervalStep(name string, seconds, minIntensity, maxIntensity float64) Step {
	return Step{
		Name:           name,
		Length:         Seconds(seconds),
		Targets:        []Target{RangeTarget(minIntensity, maxIntensity)},
		IntensityClass: IntensityActive,
	}
}

// RecoveryStep builds an easy-spinning step between work intervals.
func RecoveryStep(seconds float64) Step {
	return Step{
		Name:           "Recovery",
		Length:         Seconds(seconds),
		Targets:        []Target{RangeTarget(45, 55)},
		IntensityClass: IntensityRest,
	}
}

// RestStep builds a full-rest step, open-ended so the athlete advances it.
func RestStep(seconds float64) Step {
	return Step{
		Name:           "Rest",
		Length:         Seconds(seconds),
		Targets:        []Target{SingleTarget(0)},
		IntensityClass: IntensityRest,
		OpenDuration:   true,
	}
}

// SweetSpotStep builds a sweet-spot work step, 88-94% of threshold.
func SweetSpotStep(seconds float64) Step {
	return IntervalStep("Sweet spot", seconds, 88, 94)
}

// VO2MaxStep builds a VO2max work step, 106-120% of threshold.
func VO2MaxStep(seconds float64) Step {
	return IntervalStep("VO2max", seconds, 106, 120)
}

// StepElement wraps steps into a single-pass element whose declared
// duration is the sum of the step lengths.
func StepElement(steps ...Step) (SimpleElement, error) {
	var total float64
	for _, s := range steps {
		total += s.Length.Value
	}
	return NewElementBuilder().
		Type(TypeStep).
		Length(Seconds(total)).
		Steps(steps...).
		Build()
}

// RepetitionElement wraps steps into an element repeated count times.
func RepetitionElement(count int, steps ...Step) (SimpleElement, error) {
	return NewElementBuilder().
		Type(TypeRepetition).
		Length(Repetitions(count)).
		Steps(steps...).
		Build()
}

// WarmUpElement is a single-pass warm-up block.
func WarmUpElement(seconds float64) (SimpleElement, error) {
	return StepElement(WarmUpStep(seconds))
}

// CoolDownElement is a single-pass cool-down block.
func CoolDownElement(seconds float64) (SimpleElement, error) {
	return StepElement(CoolDownStep(seconds))
}

// IntervalSet is a work/recovery pair repeated count times.
func IntervalSet(count int, work Step, recovery Step) (SimpleElement, error) {
	return RepetitionElement(count, work, recovery)
}
