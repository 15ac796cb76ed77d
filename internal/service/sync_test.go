package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tpeaks/internal/store"
	"tpeaks/internal/tp"
)

func TestSyncWindow(t *testing.T) {
	st := store.NewTestStore(t)

	tss := 85.0
	mux := http.NewServeMux()
	mux.HandleFunc("/fitness/v6/athletes/7/workouts/2026-08-01/2026-08-31", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]tp.Workout{
			{ID: 1, AthleteID: 7, Title: "Sweet spot", WorkoutTypeID: 2, WorkoutDay: "2026-08-10", TSSActual: &tss},
			{ID: 2, AthleteID: 7, Title: "Long run", WorkoutTypeID: 3, WorkoutDay: "2026-08-12"},
		})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	svc := NewSyncService(newTestClient(ts.URL), st)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	progress := make(chan SyncProgress, 16)
	result, err := svc.SyncWindow(context.Background(), 7, from, to, progress)
	if err != nil {
		t.Fatalf("SyncWindow() error = %v", err)
	}

	if result.WorkoutsFetched != 2 || result.WorkoutsStored != 2 {
		t.Errorf("result = %+v, want 2 fetched and stored", result)
	}
	if len(result.Errors) != 0 {
		t.Errorf("result.Errors = %v, want none", result.Errors)
	}

	// Progress channel closed with at least one update
	var updates int
	for range progress {
		updates++
	}
	if updates == 0 {
		t.Error("no progress updates received")
	}

	cached, err := st.GetWorkout(1)
	if err != nil {
		t.Fatalf("GetWorkout() error = %v", err)
	}
	if cached.Title != "Sweet spot" {
		t.Errorf("cached title = %q, want Sweet spot", cached.Title)
	}
	if cached.TSS == nil || *cached.TSS != 85 {
		t.Errorf("cached TSS = %v, want 85", cached.TSS)
	}

	if svc.LastSync().IsZero() {
		t.Error("LastSync() is zero after a successful sync")
	}
}

func TestSyncWindowChunksByMonth(t *testing.T) {
	st := store.NewTestStore(t)

	var paths []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]tp.Workout{})
	}))
	defer ts.Close()

	svc := NewSyncService(newTestClient(ts.URL), st)

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if _, err := svc.SyncWindow(context.Background(), 7, from, to, nil); err != nil {
		t.Fatalf("SyncWindow() error = %v", err)
	}

	want := []string{
		"/fitness/v6/athletes/7/workouts/2026-06-01/2026-06-30",
		"/fitness/v6/athletes/7/workouts/2026-07-01/2026-07-31",
		"/fitness/v6/athletes/7/workouts/2026-08-01/2026-08-31",
	}
	if len(paths) != len(want) {
		t.Fatalf("made %d requests %v, want %d", len(paths), paths, len(want))
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("request %d path = %s, want %s", i, paths[i], p)
		}
	}
}

func TestDeleteWorkout(t *testing.T) {
	st := store.NewTestStore(t)
	if err := st.UpsertWorkout(&store.Workout{ID: 9, AthleteID: 7, Title: "Doomed", WorkoutTypeID: 2, WorkoutDay: "2026-08-10"}); err != nil {
		t.Fatal(err)
	}

	remoteDeleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("/fitness/v6/athletes/7/workouts/9", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		remoteDeleted = true
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	svc := NewSyncService(newTestClient(ts.URL), st)
	if err := svc.DeleteWorkout(context.Background(), 7, 9); err != nil {
		t.Fatalf("DeleteWorkout() error = %v", err)
	}

	if !remoteDeleted {
		t.Error("remote delete never happened")
	}
	if _, err := st.GetWorkout(9); err != store.ErrWorkoutNotFound {
		t.Errorf("GetWorkout() after delete error = %v, want ErrWorkoutNotFound", err)
	}
}

func TestConvertWorkout(t *testing.T) {
	hours := 1.5
	w := tp.Workout{
		ID:            5,
		AthleteID:     7,
		Title:         "Tempo",
		WorkoutTypeID: tp.WorkoutTypeRun,
		WorkoutDay:    "2026-08-20",
		TotalTime:     &hours,
		Completed:     true,
		StructureJSON: `{"structure":[]}`,
	}

	got := convertWorkout(w)
	if got.ID != 5 || got.Title != "Tempo" || got.WorkoutDay != "2026-08-20" {
		t.Errorf("convertWorkout() = %+v", got)
	}
	if !got.Completed {
		t.Error("Completed not carried over")
	}
	if !got.HasStructure() {
		t.Error("structure not carried over")
	}
}
