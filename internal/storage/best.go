package storage

import (
	"github.com/charmbracelet/log"
)

// BestScores adapts a Store to the runner's best-score port. Failures are
// logged and swallowed so the game loop never sees them.
type BestScores struct {
	store  *Store
	key    string
	logger *log.Logger
}

// NewBestScores creates an adapter persisting under key. A nil store makes
// every load return 0 and every write a no-op.
func NewBestScores(store *Store, key string, logger *log.Logger) *BestScores {
	if logger == nil {
		logger = log.Default()
	}
	return &BestScores{store: store, key: key, logger: logger}
}

// LoadBest returns the persisted best score, or 0.
func (b *BestScores) LoadBest() int {
	if b.store == nil {
		return 0
	}
	best, err := b.store.LoadBest(b.key)
	if err != nil {
		b.logger.Warn("could not load best score", "key", b.key, "error", err)
		return 0
	}
	return best
}

// StoreBest persists a new best score.
func (b *BestScores) StoreBest(score int) {
	if b.store == nil {
		return
	}
	if err := b.store.StoreBest(b.key, score); err != nil {
		b.logger.Warn("could not store best score", "key", b.key, "score", score, "error", err)
	}
}
