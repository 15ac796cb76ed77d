package tui

import (
	"context"
	"fmt"
	"time"

	"tpeaks/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SyncModel is the sync screen model
type SyncModel struct {
	syncService *service.SyncService
	athleteID   int64
	syncing     bool
	result      *service.SyncResult
	err         error
	done        bool
}

// NewSyncModel creates a new sync model
func NewSyncModel(ss *service.SyncService, athleteID int64) SyncModel {
	return SyncModel{
		syncService: ss,
		athleteID:   athleteID,
	}
}

// Init initializes the sync screen
func (m SyncModel) Init() tea.Cmd {
	return nil
}

// SyncDoneMsg is sent when sync finishes
type SyncDoneMsg struct {
	Result *service.SyncResult
	Err    error
}

// SyncCompleteMsg tells the app to refresh after a successful sync
type SyncCompleteMsg struct{}

// Update handles messages
func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SyncDoneMsg:
		m.syncing = false
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		return m, func() tea.Msg { return SyncCompleteMsg{} }

	case tea.KeyMsg:
		if !m.syncing {
			switch msg.String() {
			case "enter", "s":
				m.syncing = true
				m.done = false
				m.err = nil
				m.result = nil
				return m, m.runSync
			}
		}
	}
	return m, nil
}

func (m SyncModel) runSync() tea.Msg {
	ctx := context.Background()

	// Trailing quarter plus the upcoming month of planned workouts.
	// Progress channel stays nil; the screen only shows the final result.
	now := time.Now()
	from := now.AddDate(0, -3, 0)
	to := now.AddDate(0, 1, 0)

	result, syncErr := m.syncService.SyncWindow(ctx, m.athleteID, from, to, nil)
	return SyncDoneMsg{Result: result, Err: syncErr}
}

// View renders the sync screen
func (m SyncModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("TrainingPeaks Sync"))

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err)))
		sections = append(sections, "\n"+statusStyle.Render("  Press 's' or Enter to retry"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.done && !m.syncing {
		sections = append(sections, successStyle.Render("\n  Sync complete!"))
		if m.result != nil {
			sections = append(sections, fmt.Sprintf("\n  Workouts fetched: %d", m.result.WorkoutsFetched))
			sections = append(sections, fmt.Sprintf("  Workouts cached:  %d", m.result.WorkoutsStored))
			for _, err := range m.result.Errors {
				sections = append(sections, errorStyle.Render(fmt.Sprintf("  ! %v", err)))
			}
		}
		if form, desc, err := m.syncService.CurrentForm(90); err == nil && desc != "" {
			sections = append(sections, fmt.Sprintf("\n  Fitness %.0f  Fatigue %.0f  Form %+.0f",
				form.CTL, form.ATL, form.TSB))
			sections = append(sections, statusStyle.Render("  "+desc))
		}
		sections = append(sections, "\n"+statusStyle.Render("  Press '1' to view workouts"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.syncing {
		sections = append(sections, "\n  Syncing with TrainingPeaks...")
	} else {
		sections = append(sections, "")
		sections = append(sections, "  This will fetch your recent and upcoming workouts.")
		if last := m.syncService.LastSync(); !last.IsZero() {
			sections = append(sections, statusStyle.Render(
				fmt.Sprintf("  Last synced %s", last.Local().Format("2006-01-02 15:04"))))
		}
		sections = append(sections, "")
		sections = append(sections, statusStyle.Render("  Press 's' or Enter to start sync"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
