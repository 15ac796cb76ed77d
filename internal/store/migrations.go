package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Authentication (singleton row)
		`CREATE TABLE IF NOT EXISTS auth (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			user_id INTEGER NOT NULL,
			athlete_id INTEGER NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Workout summaries synced from the API
		`CREATE TABLE IF NOT EXISTS workouts (
			id INTEGER PRIMARY KEY,
			athlete_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			workout_type_id INTEGER NOT NULL,
			workout_day TEXT NOT NULL,
			description TEXT,
			total_time REAL,
			distance REAL,
			tss REAL,
			completed INTEGER NOT NULL DEFAULT 0,
			structure_json TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_workouts_day ON workouts(workout_day)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_athlete ON workouts(athlete_id)`,

		// Sync State (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
