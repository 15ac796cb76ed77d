package workout

import (
	"errors"
	"strings"
	"testing"
)

func TestElementBuilderBuild(t *testing.T) {
	step := IntervalStep("Work", 300, 95, 105)

	el, err := NewElementBuilder().
		Type(TypeRepetition).
		Length(Repetitions(3)).
		Step(step).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if el.Type != TypeRepetition {
		t.Errorf("Type = %v, want %v", el.Type, TypeRepetition)
	}
	if !el.Length.Equal(Repetitions(3)) {
		t.Errorf("Length = %+v, want 3 repetitions", el.Length)
	}
	if len(el.Steps) != 1 || el.Steps[0].Name != "Work" {
		t.Errorf("Steps = %+v, want the single Work step", el.Steps)
	}
}

func TestElementBuilderMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (SimpleElement, error)
		missing []string
	}{
		{
			name:    "everything missing",
			build:   func() (SimpleElement, error) { return NewElementBuilder().Build() },
			missing: []string{"type", "length", "steps"},
		},
		{
			name: "missing length",
			build: func() (SimpleElement, error) {
				return NewElementBuilder().Type(TypeStep).Step(RecoveryStep(60)).Build()
			},
			missing: []string{"length"},
		},
		{
			name: "missing steps",
			build: func() (SimpleElement, error) {
				return NewElementBuilder().Type(TypeStep).Length(Seconds(60)).Build()
			},
			missing: []string{"steps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			var cerr *ConstructionError
			if !errors.As(err, &cerr) {
				t.Fatalf("Build() error = %v, want *ConstructionError", err)
			}
			if len(cerr.Missing) != len(tt.missing) {
				t.Fatalf("Missing = %v, want %v", cerr.Missing, tt.missing)
			}
			for i, field := range tt.missing {
				if cerr.Missing[i] != field {
					t.Errorf("Missing[%d] = %q, want %q", i, cerr.Missing[i], field)
				}
				if !strings.Contains(cerr.Error(), field) {
					t.Errorf("error %q does not name field %q", cerr.Error(), field)
				}
			}
		})
	}
}

func TestElementBuilderNormalizeTime(t *testing.T) {
	step := Step{
		Name:           "Tempo",
		Length:         Minutes(20),
		Targets:        []Target{RangeTarget(85, 95)},
		IntensityClass: IntensityActive,
	}

	el, err := NewElementBuilder().
		Type(TypeStep).
		Length(Minutes(20)).
		Step(step).
		NormalizeTime().
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !el.Length.Equal(Seconds(1200)) {
		t.Errorf("element length = %+v, want 1200 seconds", el.Length)
	}
	if !el.Steps[0].Length.Equal(Seconds(1200)) {
		t.Errorf("step length = %+v, want 1200 seconds", el.Steps[0].Length)
	}

	// Non-time lengths pass through untouched.
	rep, err := NewElementBuilder().
		Type(TypeRepetition).
		Length(Repetitions(4)).
		Step(IntervalStep("Work", 60, 100, 110)).
		NormalizeTime().
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !rep.Length.Equal(Repetitions(4)) {
		t.Errorf("repetition length = %+v, want 4 repetitions", rep.Length)
	}
}

func TestElementBuilderCopiesSteps(t *testing.T) {
	steps := []Step{RecoveryStep(60)}
	el, err := NewElementBuilder().
		Type(TypeStep).
		Length(Seconds(60)).
		Steps(steps...).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	steps[0].Name = "mutated"
	if el.Steps[0].Name == "mutated" {
		t.Error("built element shares the caller's step slice")
	}
}

func TestCompleteElementBuilder(t *testing.T) {
	el, err := NewCompleteElementBuilder().
		Type(TypeStep).
		Length(Seconds(600)).
		Step(WarmUpStep(600)).
		Begin(0).
		End(600).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if el.Begin != 0 || el.End != 600 {
		t.Errorf("begin/end = %v/%v, want 0/600", el.Begin, el.End)
	}
	if el.Duration() != 600 {
		t.Errorf("Duration() = %v, want 600", el.Duration())
	}
	if len(el.Polyline) < 2 {
		t.Errorf("Polyline has %d points, want at least 2", len(el.Polyline))
	}
}

func TestCompleteElementBuilderRequiresTiming(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (Element, error)
		missing []string
	}{
		{
			name: "missing begin and end",
			build: func() (Element, error) {
				return NewCompleteElementBuilder().
					Type(TypeStep).Length(Seconds(60)).Step(RecoveryStep(60)).Build()
			},
			missing: []string{"begin", "end"},
		},
		{
			name: "missing end only",
			build: func() (Element, error) {
				return NewCompleteElementBuilder().
					Type(TypeStep).Length(Seconds(60)).Step(RecoveryStep(60)).Begin(0).Build()
			},
			missing: []string{"end"},
		},
		{
			name: "zero begin is set, not missing",
			build: func() (Element, error) {
				return NewCompleteElementBuilder().
					Type(TypeStep).Length(Seconds(60)).Step(RecoveryStep(60)).Begin(0).End(60).Build()
			},
			missing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if tt.missing == nil {
				if err != nil {
					t.Fatalf("Build() error = %v, want nil", err)
				}
				return
			}
			var cerr *ConstructionError
			if !errors.As(err, &cerr) {
				t.Fatalf("Build() error = %v, want *ConstructionError", err)
			}
			if len(cerr.Missing) != len(tt.missing) {
				t.Fatalf("Missing = %v, want %v", cerr.Missing, tt.missing)
			}
			for i, field := range tt.missing {
				if cerr.Missing[i] != field {
					t.Errorf("Missing[%d] = %q, want %q", i, cerr.Missing[i], field)
				}
			}
		})
	}
}
