package service

import (
	"context"
	"fmt"

	"tpeaks/internal/store"
	"tpeaks/internal/tp"
	"tpeaks/internal/workout"
)

// PlanService assembles structured workouts, runs them through the timing
// engine and schedules them on the athlete's calendar
type PlanService struct {
	client *tp.Client
	store  *store.Store
}

// NewPlanService creates a new plan service
func NewPlanService(client *tp.Client, st *store.Store) *PlanService {
	return &PlanService{client: client, store: st}
}

// SessionSpec describes an interval session to assemble: warm up, a repeated
// work/recovery set, cool down. Durations are in seconds.
type SessionSpec struct {
	Title        string
	WarmUp       float64
	Repeats      int
	WorkName     string
	Work         float64
	WorkMin      float64 // percent of threshold
	WorkMax      float64
	Recovery     float64
	CoolDown     float64
	Metric       workout.IntensityMetric
}

// BuildSession assembles the simple structure for a spec. The structure has
// no timing yet; Schedule runs the engine.
func (p *PlanService) BuildSession(spec SessionSpec) (workout.SimpleStructure, error) {
	var elements []workout.SimpleElement

	if spec.WarmUp > 0 {
		el, err := workout.WarmUpElement(spec.WarmUp)
		if err != nil {
			return workout.SimpleStructure{}, fmt.Errorf("building warm up: %w", err)
		}
		elements = append(elements, el)
	}

	if spec.Repeats > 0 {
		work := workout.IntervalStep(spec.WorkName, spec.Work, spec.WorkMin, spec.WorkMax)
		set, err := workout.IntervalSet(spec.Repeats, work, workout.RecoveryStep(spec.Recovery))
		if err != nil {
			return workout.SimpleStructure{}, fmt.Errorf("building interval set: %w", err)
		}
		elements = append(elements, set)
	}

	if spec.CoolDown > 0 {
		el, err := workout.CoolDownElement(spec.CoolDown)
		if err != nil {
			return workout.SimpleStructure{}, fmt.Errorf("building cool down: %w", err)
		}
		elements = append(elements, el)
	}

	metric := spec.Metric
	if metric == "" {
		metric = workout.MetricPercentOfThresholdPower
	}

	return workout.SimpleStructure{
		Structure:              elements,
		PrimaryLengthMetric:    workout.MetricDuration,
		PrimaryIntensityMetric: metric,
		IntensityTargetType:    workout.TargetRange,
	}, nil
}

// Schedule converts a simple structure to a complete one and creates the
// workout remotely, caching the result. Day is YYYY-MM-DD.
func (p *PlanService) Schedule(ctx context.Context, athleteID int64, title, day string, typeID int, simple workout.SimpleStructure) (*tp.Workout, error) {
	complete, err := workout.ToCompleteStructure(simple)
	if err != nil {
		return nil, fmt.Errorf("computing structure timing: %w", err)
	}

	created, err := p.client.CreateStructuredWorkout(ctx, tp.StructuredWorkout{
		AthleteID:     athleteID,
		Title:         title,
		WorkoutTypeID: typeID,
		WorkoutDay:    day,
		Structure:     complete,
	})
	if err != nil {
		return nil, fmt.Errorf("creating workout: %w", err)
	}

	cached := store.Workout{
		ID:            created.ID,
		AthleteID:     athleteID,
		Title:         title,
		WorkoutTypeID: typeID,
		WorkoutDay:    day,
		StructureJSON: marshalStructure(complete),
	}
	if err := p.store.UpsertWorkout(&cached); err != nil {
		return created, fmt.Errorf("caching workout %d: %w", created.ID, err)
	}

	return created, nil
}

// IntensityProfile flattens a complete structure into a per-slice intensity
// series for charting: one point per resolution seconds, each the midpoint
// of the step owning that moment. Repetition elements cycle through their
// steps repeat-count times.
func IntensityProfile(s workout.Structure, resolution float64) []float64 {
	if resolution <= 0 {
		resolution = 60
	}

	var profile []float64
	for _, el := range s.Structure {
		for _, seg := range elementSegments(el) {
			n := int(seg.duration / resolution)
			if n < 1 {
				n = 1
			}
			for i := 0; i < n; i++ {
				profile = append(profile, seg.intensity)
			}
		}
	}
	return profile
}

type segment struct {
	duration  float64
	intensity float64
}

// elementSegments expands an element into sequential (duration, intensity)
// segments, unrolling repetitions
func elementSegments(el workout.Element) []segment {
	var segs []segment
	if el.Type == workout.TypeRepetition {
		count := int(el.Length.Value)
		for i := 0; i < count; i++ {
			for _, st := range el.Steps {
				segs = append(segs, segment{
					duration:  st.Length.Value,
					intensity: st.PrimaryTarget().Midpoint(),
				})
			}
		}
		return segs
	}
	for _, st := range el.Steps {
		segs = append(segs, segment{
			duration:  st.Length.Value,
			intensity: st.PrimaryTarget().Midpoint(),
		})
	}
	return segs
}
