package tui

import (
	"fmt"

	"tpeaks/internal/config"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in meters to the user's preferred unit
func (u Units) FormatDistance(meters float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

// FormatDuration formats a duration in seconds as h:mm:ss or m:ss
func (u Units) FormatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatHours formats a duration expressed in hours (the API's unit for
// total workout time)
func (u Units) FormatHours(hours float64) string {
	return u.FormatDuration(hours * 3600)
}
