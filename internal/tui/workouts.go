package tui

import (
	"fmt"
	"time"

	"tpeaks/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// workoutTypeNames maps the common workout type IDs to labels
var workoutTypeNames = map[int]string{
	1:   "Swim",
	2:   "Bike",
	3:   "Run",
	9:   "Strength",
	100: "Other",
}

// WorkoutsModel is the workout list screen model
type WorkoutsModel struct {
	store    *store.Store
	units    Units
	workouts []store.Workout
	cursor   int
	loading  bool
	err      error
}

// NewWorkoutsModel creates a new workouts model
func NewWorkoutsModel(st *store.Store, units Units) WorkoutsModel {
	return WorkoutsModel{
		store:   st,
		units:   units,
		loading: true,
	}
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return m.load
}

type workoutsLoadedMsg struct {
	workouts []store.Workout
	err      error
}

// OpenWorkoutDetailMsg asks the app to open the detail screen
type OpenWorkoutDetailMsg struct {
	WorkoutID int64
}

func (m WorkoutsModel) load() tea.Msg {
	// Trailing quarter plus the upcoming month of planned workouts
	now := time.Now()
	from := now.AddDate(0, -3, 0).Format("2006-01-02")
	to := now.AddDate(0, 1, 0).Format("2006-01-02")

	workouts, err := m.store.ListWorkouts(from, to)
	return workoutsLoadedMsg{workouts: workouts, err: err}
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.workouts = msg.workouts
		if m.cursor >= len(m.workouts) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.workouts)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m, m.load
		case "enter":
			if len(m.workouts) > 0 && m.cursor < len(m.workouts) {
				id := m.workouts[m.cursor].ID
				return m, func() tea.Msg {
					return OpenWorkoutDetailMsg{WorkoutID: id}
				}
			}
		}
	}
	return m, nil
}

// View renders the workout list
func (m WorkoutsModel) View() string {
	if m.loading {
		return "\n  Loading workouts..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.workouts) == 0 {
		return "\n  No workouts cached. Press 's' to sync with TrainingPeaks."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d)", len(m.workouts)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %-30s  %-8s  %7s  %6s  %s",
		"Date", "Title", "Type", "Time", "TSS", "Struct"))
	sections = append(sections, header)

	for i, w := range m.workouts {
		typeName := workoutTypeNames[w.WorkoutTypeID]
		if typeName == "" {
			typeName = fmt.Sprintf("#%d", w.WorkoutTypeID)
		}

		timeStr := "-"
		if w.TotalTime != nil {
			timeStr = m.units.FormatHours(*w.TotalTime)
		}
		tssStr := "-"
		if w.TSS != nil {
			tssStr = fmt.Sprintf("%.0f", *w.TSS)
		}
		structStr := ""
		if w.HasStructure() {
			structStr = "yes"
		}

		row := fmt.Sprintf("   %-10s  %-30s  %-8s  %7s  %6s  %s",
			w.WorkoutDay, truncate(w.Title, 30), typeName, timeStr, tssStr, structStr)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	sections = append(sections, statusStyle.Render("  Enter: detail  r: reload  s: sync"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
