package runner

import "github.com/vovakirdan/cat-runner/internal/core"

// Scene is what the presenter needs to draw one frame.
type Scene struct {
	Player    core.Rect
	Grounded  bool
	Obstacles []core.Rect // Spawn order
	GroundY   float64
	Width     float64
	Height    float64
	Time      float64 // Simulated milliseconds for visual effects
	Level     float64 // Speed progress in [0, 1]
}

// Presenter draws the game. Calls happen synchronously after the world
// has been updated for the tick.
type Presenter interface {
	DrawScene(s Scene)
	SetScore(score int)
	SetBest(best int)
	ShowPanel(title, message string, visible bool)
}

// BestScoreStore persists the best score. Implementations handle their own
// failures: LoadBest returns 0 when nothing usable is stored.
type BestScoreStore interface {
	LoadBest() int
	StoreBest(score int)
}

// NopPresenter discards everything. Used for headless runs.
type NopPresenter struct{}

func (NopPresenter) DrawScene(Scene)                {}
func (NopPresenter) SetScore(int)                   {}
func (NopPresenter) SetBest(int)                    {}
func (NopPresenter) ShowPanel(string, string, bool) {}

// MemoryBestStore keeps the best score in memory. Used when no database is
// available.
type MemoryBestStore struct {
	Best   int
	Writes int
}

// LoadBest returns the stored best score.
func (s *MemoryBestStore) LoadBest() int { return s.Best }

// StoreBest records a new best score.
func (s *MemoryBestStore) StoreBest(score int) {
	s.Best = score
	s.Writes++
}
