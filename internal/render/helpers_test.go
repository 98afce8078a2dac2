package render

import (
	"strings"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
)

func defaultConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// row returns line y of the screen as plain text.
func row(s *core.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}
