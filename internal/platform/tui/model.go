package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
	"github.com/vovakirdan/cat-runner/internal/render"
	"github.com/vovakirdan/cat-runner/internal/runner"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

const (
	// GameID identifies runs in the score history.
	GameID = "catrunner"

	// DefaultFPS is the frame rate used when none is configured.
	DefaultFPS = 60

	helpRows = 1
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model.
type Options struct {
	Config config.RunnerConfig
	Seed   int64 // 0 picks a time-based seed
	FPS    int
	Store  *storage.Store // nil keeps the best score in memory only
	Logger *log.Logger
}

// Model is the Bubble Tea model for one player session.
type Model struct {
	driver   *runner.Driver
	machine  *runner.Machine
	view     *render.Terminal
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	fps      int
	gen      int  // Generation of the live tick loop
	saved    bool // Whether the finished run is in the history
	quitting bool
}

// NewModel creates a model sized to width x height and renders the idle
// frame.
func NewModel(opts Options, width, height int) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	var best runner.BestScoreStore = &runner.MemoryBestStore{}
	if opts.Store != nil {
		best = storage.NewBestScores(opts.Store, opts.Config.Storage.BestScoreKey, opts.Logger)
	}

	view := render.NewTerminal()
	machine := runner.NewMachine(runner.NewWorld(opts.Config, opts.Seed), view, best)
	machine.Init()

	h := help.New()
	h.Width = width

	return Model{
		driver:  runner.NewDriver(machine),
		machine: machine,
		view:    view,
		screen:  core.NewScreen(width, core.Max(height-helpRows, 1)),
		store:   opts.Store,
		logger:  opts.Logger,
		keys:    DefaultKeyMap(),
		help:    h,
		fps:     opts.FPS,
	}
}

// Init does nothing: frames are only scheduled while a run is live.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	intent := m.keys.Intent(msg, m.machine.State())
	if intent == core.IntentQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.driver.Dispatch(intent, time.Now()) {
		m.gen++
		m.saved = false
		return m, tickCmd(m.fps, m.gen)
	}
	return m, nil
}

// handleTick runs one frame of the live loop.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}

	if m.driver.Frame(msg.Time) {
		return m, tickCmd(m.fps, m.gen)
	}

	if m.machine.State() == runner.StateOver && !m.saved {
		m.recordRun()
		m.saved = true
	}
	return m, nil
}

// recordRun adds the finished run to the score history.
func (m *Model) recordRun() {
	score := m.machine.Score()
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(GameID, score); err != nil {
		m.logger.Warn("could not save run", "score", score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.view.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".catrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", GameID, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Machine returns the game state machine.
func (m Model) Machine() *runner.Machine {
	return m.machine
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options, width, height int) error {
	p := tea.NewProgram(
		NewModel(opts, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
