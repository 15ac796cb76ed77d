package workout

import "testing"

// sessionFixture is a warm up, a 3x work/rest set, and a cool down, run
// through the timing engine.
func sessionFixture(t *testing.T) Structure {
	t.Helper()

	warm, err := WarmUpElement(600)
	if err != nil {
		t.Fatalf("WarmUpElement() error = %v", err)
	}
	set, err := IntervalSet(3, IntervalStep("Work", 300, 95, 105), RecoveryStep(180))
	if err != nil {
		t.Fatalf("IntervalSet() error = %v", err)
	}
	cool, err := CoolDownElement(300)
	if err != nil {
		t.Fatalf("CoolDownElement() error = %v", err)
	}

	complete, err := ToCompleteStructure(SimpleStructure{
		Structure:              []SimpleElement{warm, set, cool},
		PrimaryLengthMetric:    MetricDuration,
		PrimaryIntensityMetric: MetricPercentOfThresholdPower,
		IntensityTargetType:    TargetRange,
	})
	if err != nil {
		t.Fatalf("ToCompleteStructure() error = %v", err)
	}
	return complete
}

func TestStructureTotalDuration(t *testing.T) {
	s := sessionFixture(t)

	want := 600.0 + 3*(300+180) + 300
	if got := s.TotalDuration(); got != want {
		t.Errorf("TotalDuration() = %v, want %v", got, want)
	}
	// Contiguous from zero, so the sum matches the last end.
	if last := s.Structure[len(s.Structure)-1].End; s.TotalDuration() != last {
		t.Errorf("TotalDuration() = %v, last end = %v", s.TotalDuration(), last)
	}
}

func TestStructureAllSteps(t *testing.T) {
	s := sessionFixture(t)

	names := []string{"Warm up", "Work", "Recovery", "Cool down"}
	steps := s.AllSteps()
	if len(steps) != len(names) {
		t.Fatalf("AllSteps() has %d steps, want %d", len(steps), len(names))
	}
	for i, want := range names {
		if steps[i].Name != want {
			t.Errorf("AllSteps()[%d].Name = %q, want %q", i, steps[i].Name, want)
		}
	}
}

func TestStructureStepFilters(t *testing.T) {
	s := sessionFixture(t)

	active := s.ActiveSteps()
	if len(active) != 1 || active[0].Name != "Work" {
		t.Errorf("ActiveSteps() = %+v, want just the Work step", active)
	}

	rest := s.RestSteps()
	if len(rest) != 1 || rest[0].Name != "Recovery" {
		t.Errorf("RestSteps() = %+v, want just the Recovery step", rest)
	}
}

func TestStructureElementFilters(t *testing.T) {
	s := sessionFixture(t)

	reps := s.Repetitions()
	if len(reps) != 1 || reps[0].Type != TypeRepetition {
		t.Errorf("Repetitions() = %+v, want the single interval set", reps)
	}

	stepEls := s.StepElements()
	if len(stepEls) != 2 {
		t.Fatalf("StepElements() has %d elements, want 2", len(stepEls))
	}
	for _, el := range stepEls {
		if el.Type != TypeStep {
			t.Errorf("StepElements() returned a %v element", el.Type)
		}
	}
}

func TestStructureAverageIntensity(t *testing.T) {
	s := sessionFixture(t)

	// Midpoints: warm up 50, work 100, recovery 50, cool down 47.5.
	want := (50.0 + 100 + 50 + 47.5) / 4
	if got := s.AverageIntensity(); got != want {
		t.Errorf("AverageIntensity() = %v, want %v", got, want)
	}
}

func TestStructureAverageIntensityEmpty(t *testing.T) {
	if got := (Structure{}).AverageIntensity(); got != 0 {
		t.Errorf("AverageIntensity() on empty structure = %v, want 0", got)
	}
}

func TestPresetSteps(t *testing.T) {
	tests := []struct {
		name  string
		step  Step
		class IntensityClass
	}{
		{"warm up", WarmUpStep(600), IntensityWarmUp},
		{"cool down", CoolDownStep(300), IntensityCoolDown},
		{"recovery", RecoveryStep(120), IntensityRest},
		{"rest", RestStep(60), IntensityRest},
		{"sweet spot", SweetSpotStep(1200), IntensityActive},
		{"vo2max", VO2MaxStep(180), IntensityActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step.IntensityClass != tt.class {
				t.Errorf("IntensityClass = %v, want %v", tt.step.IntensityClass, tt.class)
			}
			if tt.step.Length.Unit != UnitSecond {
				t.Errorf("Length.Unit = %v, want second", tt.step.Length.Unit)
			}
			if len(tt.step.Targets) == 0 {
				t.Error("preset step has no targets")
			}
		})
	}

	if !RestStep(60).OpenDuration {
		t.Error("RestStep should be open duration")
	}
	if RecoveryStep(60).OpenDuration {
		t.Error("RecoveryStep should not be open duration")
	}
}

func TestStepElementDeclaredLength(t *testing.T) {
	el, err := StepElement(
		IntervalStep("A", 300, 95, 105),
		RecoveryStep(100),
	)
	if err != nil {
		t.Fatalf("StepElement() error = %v", err)
	}
	if !el.Length.Equal(Seconds(400)) {
		t.Errorf("Length = %+v, want 400 seconds", el.Length)
	}
}
