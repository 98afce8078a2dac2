package runner

import (
	"fmt"

	"github.com/vovakirdan/cat-runner/internal/core"
)

// State is the game lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Panel texts.
const (
	idleTitle   = "Kitty is ready"
	idleMessage = "Press Space or Up to start and help the kitty dodge the obstacles!"
	overTitle   = "Game over"
)

// Machine owns the world and gates every input and tick on the lifecycle:
// idle -> running -> over -> running.
type Machine struct {
	world     *World
	presenter Presenter
	store     BestScoreStore
	state     State
	best      int
}

// NewMachine creates a machine in the idle state. A nil presenter or store
// is replaced with a no-op presenter or an in-memory store.
func NewMachine(world *World, presenter Presenter, store BestScoreStore) *Machine {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	if store == nil {
		store = &MemoryBestStore{}
	}
	return &Machine{
		world:     world,
		presenter: presenter,
		store:     store,
		state:     StateIdle,
	}
}

// Init loads the best score and renders the idle frame.
func (m *Machine) Init() {
	m.best = m.store.LoadBest()
	if m.best < 0 {
		m.best = 0
	}
	m.presenter.SetBest(m.best)
	m.presenter.SetScore(0)
	m.presenter.ShowPanel(idleTitle, idleMessage, true)
	m.presenter.DrawScene(m.world.Scene())
}

// State returns the current lifecycle phase.
func (m *Machine) State() State { return m.state }

// Best returns the best score known to this machine.
func (m *Machine) Best() int { return m.best }

// Score returns the floored score of the current or last run.
func (m *Machine) Score() int { return m.world.DisplayScore() }

// World returns the simulation context.
func (m *Machine) World() *World { return m.world }

// Start begins a run from idle or over. It reports whether the request was
// accepted; a running game ignores it.
func (m *Machine) Start() bool {
	if m.state == StateRunning {
		return false
	}
	m.world.Reset()
	m.state = StateRunning
	m.presenter.SetScore(0)
	m.presenter.ShowPanel("", "", false)
	return true
}

// Jump makes the player jump while running. Outside a run, or while
// airborne, it does nothing.
func (m *Machine) Jump() bool {
	if m.state != StateRunning {
		return false
	}
	return m.world.Jump()
}

// Dispatch routes an intent to its transition. Start and restart are the
// same request.
func (m *Machine) Dispatch(in core.Intent) bool {
	switch in {
	case core.IntentStart, core.IntentRestart:
		return m.Start()
	case core.IntentJump:
		return m.Jump()
	default:
		return false
	}
}

// Tick advances one frame of deltaMs and renders it. It returns whether the
// game is still running; outside a run it does nothing and returns false.
func (m *Machine) Tick(deltaMs float64) bool {
	if m.state != StateRunning {
		return false
	}

	collided := m.world.Step(deltaMs)
	m.presenter.SetScore(m.world.DisplayScore())
	if collided {
		m.gameOver()
	}

	m.presenter.DrawScene(m.world.Scene())
	return m.state == StateRunning
}

// gameOver ends the run and records a beaten best score.
func (m *Machine) gameOver() {
	m.state = StateOver

	// Another session sharing the store may have raised the best meanwhile
	if stored := m.store.LoadBest(); stored > m.best {
		m.best = stored
		m.presenter.SetBest(stored)
	}

	final := m.world.DisplayScore()
	if final > m.best {
		m.best = final
		m.store.StoreBest(final)
		m.presenter.SetBest(final)
	}

	msg := fmt.Sprintf("Your score: %d\nPress R or Space to play again", final)
	m.presenter.ShowPanel(overTitle, msg, true)
}
