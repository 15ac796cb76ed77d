package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tpeaks/internal/store"
	"tpeaks/internal/tp"
)

// SyncService orchestrates pulling workouts from TrainingPeaks into the
// local cache and pushing deletes and uploads back
type SyncService struct {
	client *tp.Client
	store  *store.Store
}

// NewSyncService creates a new sync service
func NewSyncService(client *tp.Client, st *store.Store) *SyncService {
	return &SyncService{client: client, store: st}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase     string // "workouts"
	Total     int
	Completed int
	Error     error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	WorkoutsFetched int
	WorkoutsStored  int
	Errors          []error
}

// SyncWindow fetches workouts for an athlete in [from, to] and caches them.
// The window is chunked by month so a season-long range doesn't turn into
// one oversized request.
func (s *SyncService) SyncWindow(ctx context.Context, athleteID int64, from, to time.Time, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	for start := from; start.Before(to); start = start.AddDate(0, 1, 0) {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		end := start.AddDate(0, 1, -1)
		if end.After(to) {
			end = to
		}

		workouts, err := s.client.ListWorkouts(ctx, athleteID, start, end)
		if err != nil {
			return result, fmt.Errorf("fetching %s to %s: %w",
				start.Format("2006-01-02"), end.Format("2006-01-02"), err)
		}
		result.WorkoutsFetched += len(workouts)

		cached := make([]store.Workout, 0, len(workouts))
		for _, w := range workouts {
			cached = append(cached, convertWorkout(w))
		}
		if err := s.store.UpsertWorkouts(cached); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("caching window %s: %w",
				start.Format("2006-01-02"), err))
			continue
		}
		result.WorkoutsStored += len(cached)

		if progress != nil {
			progress <- SyncProgress{
				Phase:     "workouts",
				Total:     result.WorkoutsFetched,
				Completed: result.WorkoutsStored,
			}
		}
	}

	if err := s.store.SetSyncState("last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("recording sync time: %w", err))
	}

	return result, nil
}

// LastSync returns the time of the last successful sync, zero when never
func (s *SyncService) LastSync() time.Time {
	v, err := s.store.GetSyncState("last_sync")
	if err != nil || v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DeleteWorkout deletes a workout remotely and evicts it from the cache.
// A workout already gone from the cache is not an error; the remote delete
// is what matters.
func (s *SyncService) DeleteWorkout(ctx context.Context, athleteID, workoutID int64) error {
	if err := s.client.DeleteWorkout(ctx, athleteID, workoutID); err != nil {
		return fmt.Errorf("deleting workout %d: %w", workoutID, err)
	}
	if err := s.store.DeleteWorkout(workoutID); err != nil && err != store.ErrWorkoutNotFound {
		return fmt.Errorf("evicting workout %d from cache: %w", workoutID, err)
	}
	return nil
}

// UploadFile uploads a workout file (TCX, GPX or FIT) from disk
func (s *SyncService) UploadFile(ctx context.Context, path string) (*tp.UploadResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.client.UploadWorkoutFile(ctx, filepath.Base(path), data)
}

// convertWorkout maps an API workout to its cached form
func convertWorkout(w tp.Workout) store.Workout {
	return store.Workout{
		ID:            w.ID,
		AthleteID:     w.AthleteID,
		Title:         w.Title,
		WorkoutTypeID: w.WorkoutTypeID,
		WorkoutDay:    w.WorkoutDay,
		Description:   w.Description,
		TotalTime:     w.TotalTime,
		Distance:      w.Distance,
		TSS:           w.TSSActual,
		Completed:     w.Completed,
		StructureJSON: w.StructureJSON,
	}
}

// marshalStructure serializes a structure for caching alongside a workout
func marshalStructure(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
