package tui

import (
	"tpeaks/internal/config"
	"tpeaks/internal/service"
	"tpeaks/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenWorkouts Screen = iota
	ScreenDetail
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	workouts   WorkoutsModel
	detail     DetailModel
	syncScreen SyncModel
	help       HelpModel

	// Dependencies
	store     *store.Store
	syncSvc   *service.SyncService
	athleteID int64
	units     Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(st *store.Store, syncSvc *service.SyncService, athleteID int64, display config.DisplayConfig) *App {
	units := NewUnits(display)
	return &App{
		screen:     ScreenWorkouts,
		store:      st,
		syncSvc:    syncSvc,
		athleteID:  athleteID,
		units:      units,
		workouts:   NewWorkoutsModel(st, units),
		syncScreen: NewSyncModel(syncSvc, athleteID),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.workouts.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings; the detail screen owns esc for itself
		if !(a.screen == ScreenSync && a.syncScreen.syncing) {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenWorkouts
				return a, a.workouts.Init()
			case "2", "s":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
				// Let 's' fall through to the sync screen when already there
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenWorkoutDetailMsg:
		a.screen = ScreenDetail
		a.detail = NewDetailModel(a.store, a.units, msg.WorkoutID, a.width, a.height)
		return a, a.detail.Init()

	case CloseDetailMsg:
		a.screen = ScreenWorkouts
		return a, a.workouts.Init()

	case SyncCompleteMsg:
		// Reload the list so fresh workouts show up
		a.workouts = NewWorkoutsModel(a.store, a.units)
		return a, a.workouts.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenSync:
		content = a.syncScreen.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("TrainingPeaks Workouts")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Workouts", ScreenWorkouts},
		{"2", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
