package store

import "time"

// Auth is the stored authentication state (a singleton row)
type Auth struct {
	UserID       int64
	AthleteID    int64
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Workout is a cached workout summary
type Workout struct {
	ID            int64
	AthleteID     int64
	Title         string
	WorkoutTypeID int
	WorkoutDay    string // YYYY-MM-DD
	Description   string
	TotalTime     *float64 // hours
	Distance      *float64 // meters
	TSS           *float64
	Completed     bool
	StructureJSON string // serialized structure, empty for unstructured workouts
}

// HasStructure reports whether the cached workout carries a structure
func (w Workout) HasStructure() bool {
	return w.StructureJSON != ""
}
