package tp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const BaseURL = "https://tpapi.trainingpeaks.com"

// uploadClientName identifies us to the file-upload endpoint
const uploadClientName = "tpeaks"

// APIError is a non-2xx response from the TrainingPeaks API
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Body)
}

// Client is a TrainingPeaks API client
type Client struct {
	// BaseURL can be overridden for tests; defaults to the production API.
	BaseURL string

	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a new TrainingPeaks API client. All requests carry the
// bearer token from tokenSource and go through the rate limiter.
func NewClient(tokenSource oauth2.TokenSource) *Client {
	return &Client{
		BaseURL:     BaseURL,
		httpClient:  oauth2.NewClient(context.Background(), tokenSource),
		rateLimiter: NewRateLimiter(),
	}
}

// GetUser fetches the authenticated user
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/v3/user", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The user endpoint nests the user object
	var payload struct {
		User User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &payload.User, nil
}

// ListWorkouts fetches workouts for an athlete in the [from, to] date range
func (c *Client) ListWorkouts(ctx context.Context, athleteID int64, from, to time.Time) ([]Workout, error) {
	path := fmt.Sprintf("/fitness/v6/athletes/%d/workouts/%s/%s",
		athleteID, from.Format("2006-01-02"), to.Format("2006-01-02"))

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var workouts []Workout
	if err := json.NewDecoder(resp.Body).Decode(&workouts); err != nil {
		return nil, fmt.Errorf("decoding workouts: %w", err)
	}
	return workouts, nil
}

// GetWorkout fetches a single workout by ID
func (c *Client) GetWorkout(ctx context.Context, athleteID, workoutID int64) (*Workout, error) {
	path := fmt.Sprintf("/fitness/v6/athletes/%d/workouts/%d", athleteID, workoutID)

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var w Workout
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("decoding workout: %w", err)
	}
	return &w, nil
}

// DeleteWorkout deletes a workout by ID
func (c *Client) DeleteWorkout(ctx context.Context, athleteID, workoutID int64) error {
	path := fmt.Sprintf("/fitness/v6/athletes/%d/workouts/%d", athleteID, workoutID)

	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// UploadWorkoutFile uploads a workout file (TCX, GPX or FIT). The file bytes
// travel base64-encoded in the JSON body. A client-generated external ID lets
// the server dedup a retried upload.
func (c *Client) UploadWorkoutFile(ctx context.Context, filename string, data []byte) (*UploadResponse, error) {
	body := uploadRequest{
		UploadClient: uploadClientName,
		Filename:     filename,
		Data:         base64.StdEncoding.EncodeToString(data),
		ExternalID:   uuid.NewString(),
	}

	resp, err := c.do(ctx, http.MethodPost, "/fitness/v6/workouts/filedata", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var upload UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	return &upload, nil
}

// CreateStructuredWorkout creates a planned workout carrying a complete
// structure from the timing engine
func (c *Client) CreateStructuredWorkout(ctx context.Context, w StructuredWorkout) (*Workout, error) {
	path := fmt.Sprintf("/fitness/v6/athletes/%d/workouts", w.AthleteID)

	resp, err := c.do(ctx, http.MethodPost, path, w)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var created Workout
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding created workout: %w", err)
	}
	return &created, nil
}

// RateLimitStatus returns the remaining request budget
func (c *Client) RateLimitStatus() int {
	return c.rateLimiter.Status()
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &APIError{Status: resp.StatusCode, Body: string(b)}
	}

	return resp, nil
}
