package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"tpeaks/internal/analysis"
	"tpeaks/internal/service"
	"tpeaks/internal/store"
	"tpeaks/internal/workout"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DetailModel is the workout detail screen model
type DetailModel struct {
	store     *store.Store
	units     Units
	workoutID int64
	workout   *store.Workout
	structure *workout.Structure
	viewport  viewport.Model
	loading   bool
	err       error
	ready     bool
}

// NewDetailModel creates a new workout detail model
func NewDetailModel(st *store.Store, units Units, workoutID int64, width, height int) DetailModel {
	m := DetailModel{
		store:     st,
		units:     units,
		workoutID: workoutID,
		loading:   true,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return m.load
}

type detailLoadedMsg struct {
	workout   *store.Workout
	structure *workout.Structure
	err       error
}

// CloseDetailMsg asks the app to return to the workout list
type CloseDetailMsg struct{}

func (m DetailModel) load() tea.Msg {
	w, err := m.store.GetWorkout(m.workoutID)
	if err != nil {
		return detailLoadedMsg{err: err}
	}

	// A missing or unparsable structure is not fatal; the summary still shows
	var structure *workout.Structure
	if w.HasStructure() {
		var s workout.Structure
		if err := json.Unmarshal([]byte(w.StructureJSON), &s); err == nil {
			structure = &s
		}
	}

	return detailLoadedMsg{workout: w, structure: structure}
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.workout = msg.workout
		m.structure = msg.structure
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return CloseDetailMsg{} }
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the detail screen
func (m DetailModel) View() string {
	if m.loading {
		return "\n  Loading workout..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if !m.ready {
		return "\n  ..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		statusStyle.Render("  Esc: back  up/down: scroll"))
}

func (m DetailModel) renderContent() string {
	if m.workout == nil {
		return ""
	}

	var sections []string
	w := m.workout

	sections = append(sections, cardTitleStyle.Render(w.Title))
	sections = append(sections, fmt.Sprintf("  %s", w.WorkoutDay))

	if w.Description != "" {
		sections = append(sections, "", "  "+w.Description)
	}

	var facts []string
	if w.TotalTime != nil {
		facts = append(facts, "Time "+m.units.FormatHours(*w.TotalTime))
	}
	if w.Distance != nil {
		facts = append(facts, "Distance "+m.units.FormatDistance(*w.Distance))
	}
	if w.TSS != nil {
		facts = append(facts, fmt.Sprintf("TSS %.0f", *w.TSS))
	}
	if len(facts) > 0 {
		sections = append(sections, "", "  "+strings.Join(facts, "   "))
	}

	if m.structure != nil {
		sections = append(sections, "", m.renderStructure(*m.structure))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStructure shows the interval breakdown and an intensity chart
func (m DetailModel) renderStructure(s workout.Structure) string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Structure"))
	sections = append(sections, fmt.Sprintf("  Total %s, average intensity %.0f%%, est. TSS %.0f",
		m.units.FormatDuration(s.TotalDuration()), s.AverageIntensity(), analysis.PlannedTSS(s)))
	sections = append(sections, "")

	for _, el := range s.Structure {
		window := fmt.Sprintf("%s-%s",
			m.units.FormatDuration(el.Begin), m.units.FormatDuration(el.End))
		if el.Type == workout.TypeRepetition {
			sections = append(sections, fmt.Sprintf("  %s  %dx:", window, int(el.Length.Value)))
		} else {
			sections = append(sections, fmt.Sprintf("  %s:", window))
		}
		for _, st := range el.Steps {
			target := st.PrimaryTarget()
			intensity := fmt.Sprintf("%.0f-%.0f%%", target.MinValue, target.MaxValue)
			if target.IsSingle() {
				intensity = fmt.Sprintf("%.0f%%", target.MinValue)
			}
			open := ""
			if st.OpenDuration {
				open = " (open)"
			}
			sections = append(sections, fmt.Sprintf("    %-20s %7s  %s%s",
				st.Name, m.units.FormatDuration(st.Length.Value), intensity, open))
		}
	}

	// One profile point per 30s keeps short intervals visible
	profile := service.IntensityProfile(s, 30)
	if len(profile) > 1 {
		chart := asciigraph.Plot(profile,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Precision(0),
		)
		sections = append(sections, "", chart)
	}

	return strings.Join(sections, "\n")
}
