package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	TrainingPeaks TrainingPeaksConfig `json:"trainingpeaks"`
	Athlete       AthleteConfig       `json:"athlete"`
	Display       DisplayConfig       `json:"display"`
}

// TrainingPeaksConfig holds API credentials and the account to log in with
type TrainingPeaksConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Username     string `json:"username"`
}

// AthleteConfig holds athlete-specific settings used when authoring workouts
type AthleteConfig struct {
	ThresholdPower float64 `json:"threshold_power"` // watts (FTP)
	ThresholdHR    float64 `json:"threshold_hr"`    // bpm
	MaxHR          float64 `json:"max_hr"`          // bpm
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
	TimeFormat   string `json:"time_format"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Athlete: AthleteConfig{
			ThresholdPower: 200,
			ThresholdHR:    165,
			MaxHR:          185,
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
			TimeFormat:   "24h",
		},
	}
}

// Load reads the configuration from ~/.tpeaks/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Athlete.ThresholdPower == 0 {
		cfg.Athlete.ThresholdPower = defaults.Athlete.ThresholdPower
	}
	if cfg.Athlete.ThresholdHR == 0 {
		cfg.Athlete.ThresholdHR = defaults.Athlete.ThresholdHR
	}
	if cfg.Athlete.MaxHR == 0 {
		cfg.Athlete.MaxHR = defaults.Athlete.MaxHR
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if cfg.Display.TimeFormat == "" {
		cfg.Display.TimeFormat = defaults.Display.TimeFormat
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.tpeaks/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := Config{
		TrainingPeaks: TrainingPeaksConfig{
			ClientID:     "YOUR_CLIENT_ID",
			ClientSecret: "YOUR_CLIENT_SECRET",
			Username:     "your@email.com",
		},
		Athlete: AthleteConfig{
			ThresholdPower: 200,
			ThresholdHR:    165,
			MaxHR:          185,
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
			TimeFormat:   "24h",
		},
	}

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.TrainingPeaks.ClientID == "" || c.TrainingPeaks.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("trainingpeaks.client_id is required")
	}
	if c.TrainingPeaks.ClientSecret == "" || c.TrainingPeaks.ClientSecret == "YOUR_CLIENT_SECRET" {
		return errors.New("trainingpeaks.client_secret is required")
	}
	if c.TrainingPeaks.Username == "" || c.TrainingPeaks.Username == "your@email.com" {
		return errors.New("trainingpeaks.username is required")
	}

	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.TimeFormat != "" && c.Display.TimeFormat != "24h" && c.Display.TimeFormat != "12h" {
		return fmt.Errorf("display.time_format must be \"24h\" or \"12h\", got %q", c.Display.TimeFormat)
	}

	if c.Athlete.ThresholdHR > 0 && c.Athlete.MaxHR > 0 && c.Athlete.ThresholdHR >= c.Athlete.MaxHR {
		return fmt.Errorf("athlete.threshold_hr (%v) must be less than athlete.max_hr (%v)", c.Athlete.ThresholdHR, c.Athlete.MaxHR)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".tpeaks", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".tpeaks"), nil
}
