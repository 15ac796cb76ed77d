package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// UpsertWorkout inserts or updates a cached workout summary
func (s *Store) UpsertWorkout(w *Workout) error {
	_, err := s.db.Exec(`
		INSERT INTO workouts (id, athlete_id, title, workout_type_id, workout_day,
			description, total_time, distance, tss, completed, structure_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			athlete_id = excluded.athlete_id,
			title = excluded.title,
			workout_type_id = excluded.workout_type_id,
			workout_day = excluded.workout_day,
			description = excluded.description,
			total_time = excluded.total_time,
			distance = excluded.distance,
			tss = excluded.tss,
			completed = excluded.completed,
			structure_json = excluded.structure_json,
			updated_at = CURRENT_TIMESTAMP
	`, w.ID, w.AthleteID, w.Title, w.WorkoutTypeID, w.WorkoutDay,
		w.Description, w.TotalTime, w.Distance, w.TSS, w.Completed, w.StructureJSON)
	return err
}

// UpsertWorkouts upserts a batch inside one transaction
func (s *Store) UpsertWorkouts(workouts []Workout) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO workouts (id, athlete_id, title, workout_type_id, workout_day,
			description, total_time, distance, tss, completed, structure_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			athlete_id = excluded.athlete_id,
			title = excluded.title,
			workout_type_id = excluded.workout_type_id,
			workout_day = excluded.workout_day,
			description = excluded.description,
			total_time = excluded.total_time,
			distance = excluded.distance,
			tss = excluded.tss,
			completed = excluded.completed,
			structure_json = excluded.structure_json,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range workouts {
		if _, err := stmt.Exec(w.ID, w.AthleteID, w.Title, w.WorkoutTypeID, w.WorkoutDay,
			w.Description, w.TotalTime, w.Distance, w.TSS, w.Completed, w.StructureJSON); err != nil {
			return fmt.Errorf("upserting workout %d: %w", w.ID, err)
		}
	}

	return tx.Commit()
}

// GetWorkout retrieves a cached workout by ID
func (s *Store) GetWorkout(id int64) (*Workout, error) {
	row := s.db.QueryRow(`
		SELECT id, athlete_id, title, workout_type_id, workout_day,
			description, total_time, distance, tss, completed, structure_json
		FROM workouts
		WHERE id = ?
	`, id)

	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListWorkouts returns cached workouts in a [from, to] day range,
// newest first
func (s *Store) ListWorkouts(from, to string) ([]Workout, error) {
	rows, err := s.db.Query(`
		SELECT id, athlete_id, title, workout_type_id, workout_day,
			description, total_time, distance, tss, completed, structure_json
		FROM workouts
		WHERE workout_day >= ? AND workout_day <= ?
		ORDER BY workout_day DESC, id DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	return workouts, rows.Err()
}

// DeleteWorkout removes a cached workout
func (s *Store) DeleteWorkout(id int64) error {
	result, err := s.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// CountWorkouts returns the number of cached workouts
func (s *Store) CountWorkouts() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM workouts`).Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row scanner) (*Workout, error) {
	var w Workout
	var description, structureJSON sql.NullString
	err := row.Scan(&w.ID, &w.AthleteID, &w.Title, &w.WorkoutTypeID, &w.WorkoutDay,
		&description, &w.TotalTime, &w.Distance, &w.TSS, &w.Completed, &structureJSON)
	if err != nil {
		return nil, err
	}
	w.Description = description.String
	w.StructureJSON = structureJSON.String
	return &w, nil
}
