package runner

import (
	"math"

	"github.com/vovakirdan/cat-runner/internal/config"
)

const frameMs = 16.67

// recordingPresenter captures everything the machine asks to present.
type recordingPresenter struct {
	scenes       int
	lastScene    Scene
	score        int
	best         int
	bestCalls    int
	panelTitle   string
	panelMessage string
	panelVisible bool
}

func (p *recordingPresenter) DrawScene(s Scene) {
	p.scenes++
	p.lastScene = s
}

func (p *recordingPresenter) SetScore(score int) { p.score = score }

func (p *recordingPresenter) SetBest(best int) {
	p.best = best
	p.bestCalls++
}

func (p *recordingPresenter) ShowPanel(title, message string, visible bool) {
	p.panelTitle = title
	p.panelMessage = message
	p.panelVisible = visible
}

func newTestMachine(seed int64, best int) (*Machine, *recordingPresenter, *MemoryBestStore) {
	p := &recordingPresenter{}
	store := &MemoryBestStore{Best: best}
	m := NewMachine(NewWorld(config.DefaultRunnerConfig(), seed), p, store)
	m.Init()
	return m, p, store
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
