package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"

	"tpeaks/internal/store"
	"tpeaks/internal/tp"
	"tpeaks/internal/workout"
)

func newTestClient(url string) *tp.Client {
	c := tp.NewClient(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}))
	c.BaseURL = url
	return c
}

func TestBuildSession(t *testing.T) {
	p := NewPlanService(nil, nil)

	simple, err := p.BuildSession(SessionSpec{
		Title:    "3x12 sweet spot",
		WarmUp:   600,
		Repeats:  3,
		WorkName: "Sweet spot",
		Work:     720,
		WorkMin:  88,
		WorkMax:  94,
		Recovery: 300,
		CoolDown: 300,
	})
	if err != nil {
		t.Fatalf("BuildSession() error = %v", err)
	}

	if len(simple.Structure) != 3 {
		t.Fatalf("structure has %d elements, want warm up + set + cool down", len(simple.Structure))
	}
	if simple.Structure[0].Type != workout.TypeStep {
		t.Errorf("first element type = %v, want step", simple.Structure[0].Type)
	}
	set := simple.Structure[1]
	if set.Type != workout.TypeRepetition {
		t.Fatalf("second element type = %v, want repetition", set.Type)
	}
	if !set.Length.Equal(workout.Repetitions(3)) {
		t.Errorf("set length = %+v, want 3 repetitions", set.Length)
	}
	if len(set.Steps) != 2 {
		t.Fatalf("set has %d steps, want work + recovery", len(set.Steps))
	}

	// The engine prices the whole session
	total, err := workout.TotalDuration(simple)
	if err != nil {
		t.Fatalf("TotalDuration() error = %v", err)
	}
	want := 600.0 + 3*(720+300) + 300
	if total != want {
		t.Errorf("TotalDuration() = %v, want %v", total, want)
	}

	if simple.PrimaryIntensityMetric != workout.MetricPercentOfThresholdPower {
		t.Errorf("default metric = %v, want percent of threshold power", simple.PrimaryIntensityMetric)
	}
}

func TestBuildSessionOmitsEmptyParts(t *testing.T) {
	p := NewPlanService(nil, nil)

	simple, err := p.BuildSession(SessionSpec{
		Repeats:  2,
		WorkName: "Sprint",
		Work:     15,
		WorkMin:  150,
		WorkMax:  200,
		Recovery: 285,
	})
	if err != nil {
		t.Fatalf("BuildSession() error = %v", err)
	}
	if len(simple.Structure) != 1 {
		t.Fatalf("structure has %d elements, want just the set", len(simple.Structure))
	}
}

func TestSchedule(t *testing.T) {
	st := store.NewTestStore(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/fitness/v6/athletes/7/workouts", func(w http.ResponseWriter, r *http.Request) {
		var req tp.StructuredWorkout
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if got := req.Structure.Structure[0].Begin; got != 0 {
			t.Errorf("first element begin = %v, want 0", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tp.Workout{ID: 321, AthleteID: 7, Title: req.Title})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	p := NewPlanService(newTestClient(ts.URL), st)

	simple, err := p.BuildSession(SessionSpec{
		WarmUp: 600, Repeats: 3, WorkName: "Work",
		Work: 300, WorkMin: 95, WorkMax: 105, Recovery: 180, CoolDown: 300,
	})
	if err != nil {
		t.Fatal(err)
	}

	created, err := p.Schedule(context.Background(), 7, "Intervals", "2026-09-01", tp.WorkoutTypeBike, simple)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if created.ID != 321 {
		t.Errorf("created.ID = %d, want 321", created.ID)
	}

	cached, err := st.GetWorkout(321)
	if err != nil {
		t.Fatalf("GetWorkout() error = %v", err)
	}
	if !cached.HasStructure() {
		t.Fatal("cached workout has no structure")
	}
	var structure workout.Structure
	if err := json.Unmarshal([]byte(cached.StructureJSON), &structure); err != nil {
		t.Fatalf("cached structure is not valid JSON: %v", err)
	}
	if got := structure.TotalDuration(); got != 600+3*(300+180)+300 {
		t.Errorf("cached structure duration = %v, want 2340", got)
	}
}

func TestScheduleRejectsEmptyRepetition(t *testing.T) {
	p := NewPlanService(newTestClient("http://127.0.0.1:0"), store.NewTestStore(t))

	simple := workout.SimpleStructure{
		Structure: []workout.SimpleElement{
			{Type: workout.TypeRepetition, Length: workout.Repetitions(3), Steps: []workout.Step{}},
		},
	}
	if _, err := p.Schedule(context.Background(), 7, "Broken", "2026-09-01", tp.WorkoutTypeBike, simple); err == nil {
		t.Fatal("Schedule() error = nil, want computation error before any request")
	}
}

func TestIntensityProfile(t *testing.T) {
	warm, err := workout.WarmUpElement(120)
	if err != nil {
		t.Fatal(err)
	}
	set, err := workout.IntervalSet(2,
		workout.IntervalStep("Work", 60, 100, 100),
		workout.RecoveryStep(60))
	if err != nil {
		t.Fatal(err)
	}
	complete, err := workout.ToCompleteStructure(workout.SimpleStructure{
		Structure: []workout.SimpleElement{warm, set},
	})
	if err != nil {
		t.Fatal(err)
	}

	profile := IntensityProfile(complete, 60)

	// 2 min warm up at 50, then work 100 / recovery 50 twice, one point a minute
	want := []float64{50, 50, 100, 50, 100, 50}
	if len(profile) != len(want) {
		t.Fatalf("profile has %d points, want %d: %v", len(profile), len(want), profile)
	}
	for i, v := range want {
		if profile[i] != v {
			t.Errorf("profile[%d] = %v, want %v", i, profile[i], v)
		}
	}
}

func TestIntensityProfileShortSteps(t *testing.T) {
	set, err := workout.IntervalSet(3,
		workout.IntervalStep("Sprint", 15, 150, 200),
		workout.RecoveryStep(45))
	if err != nil {
		t.Fatal(err)
	}
	complete, err := workout.ToCompleteStructure(workout.SimpleStructure{
		Structure: []workout.SimpleElement{set},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Steps shorter than the resolution still contribute one point each
	profile := IntensityProfile(complete, 60)
	if len(profile) != 6 {
		t.Errorf("profile has %d points, want 6", len(profile))
	}
}
