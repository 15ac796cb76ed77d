package service

import (
	"encoding/json"
	"time"

	"tpeaks/internal/analysis"
	"tpeaks/internal/workout"
)

// FitnessTrend computes CTL/ATL/TSB over the trailing window of cached
// workouts. Completed workouts contribute their recorded TSS; planned
// structured workouts without one contribute an estimate from the
// structure itself.
func (s *SyncService) FitnessTrend(days int) ([]analysis.FitnessMetrics, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -days)

	workouts, err := s.store.ListWorkouts(from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	var loads []analysis.DailyLoad
	for _, w := range workouts {
		// Some endpoints return the day with a time suffix
		dayStr := w.WorkoutDay
		if len(dayStr) > 10 {
			dayStr = dayStr[:10]
		}
		day, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			continue
		}

		tss := 0.0
		switch {
		case w.TSS != nil:
			tss = *w.TSS
		case w.HasStructure():
			var st workout.Structure
			if json.Unmarshal([]byte(w.StructureJSON), &st) == nil {
				tss = analysis.PlannedTSS(st)
			}
		}
		if tss == 0 {
			continue
		}

		loads = append(loads, analysis.DailyLoad{Date: day, TSS: tss})
	}

	return analysis.CalculateFitnessTrend(loads), nil
}

// CurrentForm returns the latest fitness snapshot and its description
func (s *SyncService) CurrentForm(days int) (analysis.FitnessMetrics, string, error) {
	metrics, err := s.FitnessTrend(days)
	if err != nil || len(metrics) == 0 {
		return analysis.FitnessMetrics{}, "", err
	}
	current := metrics[len(metrics)-1]
	return current, analysis.FormDescription(current.TSB), nil
}
