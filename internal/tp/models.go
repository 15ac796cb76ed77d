package tp

import (
	"time"

	"tpeaks/internal/workout"
)

// User represents the authenticated TrainingPeaks user
type User struct {
	ID        int64  `json:"userId"`
	AthleteID int64  `json:"personId"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Workout represents a workout summary from the API
type Workout struct {
	ID             int64      `json:"workoutId"`
	AthleteID      int64      `json:"athleteId"`
	Title          string     `json:"title"`
	WorkoutTypeID  int        `json:"workoutTypeValueId"`
	WorkoutDay     string     `json:"workoutDay"` // YYYY-MM-DD
	StartTime      *time.Time `json:"startTime"`
	Description    string     `json:"description"`
	TotalTime      *float64   `json:"totalTime"`          // hours
	TotalTimePlan  *float64   `json:"totalTimePlanned"`   // hours
	Distance       *float64   `json:"distance"`           // meters
	DistancePlan   *float64   `json:"distancePlanned"`    // meters
	TSSActual      *float64   `json:"tssActual"`
	TSSPlanned     *float64   `json:"tssPlanned"`
	IFActual       *float64   `json:"ifActual"`
	IFPlanned      *float64   `json:"ifPlanned"`
	EnergyActual   *float64   `json:"energy"`
	Completed      bool       `json:"completed"`
	StructureJSON  string     `json:"structure,omitempty"`
}

// StructuredWorkout is the payload for creating a planned workout with a
// complete structure attached. The structure comes out of the timing engine;
// this type only adds scheduling metadata around it.
type StructuredWorkout struct {
	AthleteID     int64              `json:"athleteId"`
	Title         string             `json:"title"`
	WorkoutTypeID int                `json:"workoutTypeValueId"`
	WorkoutDay    string             `json:"workoutDay"` // YYYY-MM-DD
	Description   string             `json:"description,omitempty"`
	Structure     workout.Structure  `json:"structure"`
}

// UploadResponse is returned by the file-upload endpoint
type UploadResponse struct {
	WorkoutID int64  `json:"workoutId"`
	Status    string `json:"status"`
}

// uploadRequest is the file-upload payload: raw file bytes are carried
// base64-encoded in the JSON body
type uploadRequest struct {
	UploadClient string `json:"uploadClient"`
	Filename     string `json:"filename"`
	Data         string `json:"data"`
	ExternalID   string `json:"externalId,omitempty"`
}

// WorkoutType IDs as TrainingPeaks defines them
const (
	WorkoutTypeSwim     = 1
	WorkoutTypeBike     = 2
	WorkoutTypeRun      = 3
	WorkoutTypeStrength = 9
	WorkoutTypeOther    = 100
)
