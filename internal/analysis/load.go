package analysis

import (
	"sort"
	"time"

	"tpeaks/internal/workout"
)

// PlannedTSS estimates the training stress of a structured workout from
// its duration and average intensity. Intensities are percentages of
// threshold, so IF = avgIntensity/100 and TSS = hours * IF^2 * 100.
func PlannedTSS(s workout.Structure) float64 {
	hours := s.TotalDuration() / 3600.0
	intensityFactor := s.AverageIntensity() / 100.0
	return hours * intensityFactor * intensityFactor * 100.0
}

// PlannedIF returns the estimated intensity factor of a structure.
func PlannedIF(s workout.Structure) float64 {
	return s.AverageIntensity() / 100.0
}

// DailyLoad represents training stress for a single day.
type DailyLoad struct {
	Date time.Time
	TSS  float64
}

// FitnessMetrics represents CTL/ATL/TSB for a day
type FitnessMetrics struct {
	Date time.Time
	CTL  float64 // Chronic Training Load (42-day EMA) - "Fitness"
	ATL  float64 // Acute Training Load (7-day EMA) - "Fatigue"
	TSB  float64 // Training Stress Balance (CTL - ATL) - "Form"
}

// CalculateFitnessTrend computes CTL/ATL/TSB from daily loads
func CalculateFitnessTrend(dailyLoads []DailyLoad) []FitnessMetrics {
	if len(dailyLoads) == 0 {
		return nil
	}

	// Sort by date
	sort.Slice(dailyLoads, func(i, j int) bool {
		return dailyLoads[i].Date.Before(dailyLoads[j].Date)
	})

	// EMA decay constants
	ctlDecay := 2.0 / (42.0 + 1.0) // 42-day time constant
	atlDecay := 2.0 / (7.0 + 1.0)  // 7-day time constant

	var metrics []FitnessMetrics
	var ctl, atl float64

	// Fill in missing days with zero load
	startDate := dailyLoads[0].Date.Truncate(24 * time.Hour)
	endDate := dailyLoads[len(dailyLoads)-1].Date.Truncate(24 * time.Hour)

	// Create map of loads by date
	loadMap := make(map[string]float64)
	for _, dl := range dailyLoads {
		key := dl.Date.Format("2006-01-02")
		loadMap[key] += dl.TSS // Sum multiple workouts on same day
	}

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		tss := loadMap[key] // 0 if no workout

		// Exponential moving average
		ctl = ctl + ctlDecay*(tss-ctl)
		atl = atl + atlDecay*(tss-atl)
		tsb := ctl - atl

		metrics = append(metrics, FitnessMetrics{
			Date: d,
			CTL:  ctl,
			ATL:  atl,
			TSB:  tsb,
		})
	}

	return metrics
}

// GetCurrentFitness returns the most recent CTL/ATL/TSB values
func GetCurrentFitness(dailyLoads []DailyLoad) FitnessMetrics {
	metrics := CalculateFitnessTrend(dailyLoads)
	if len(metrics) == 0 {
		return FitnessMetrics{}
	}
	return metrics[len(metrics)-1]
}

// FormDescription returns a human-readable description of TSB
func FormDescription(tsb float64) string {
	switch {
	case tsb > 25:
		return "Very fresh (possibly detrained)"
	case tsb > 10:
		return "Fresh and ready to race"
	case tsb > 0:
		return "Neutral - good for training"
	case tsb > -10:
		return "Slightly fatigued"
	case tsb > -25:
		return "Tired but building fitness"
	default:
		return "Very fatigued - rest needed"
	}
}
