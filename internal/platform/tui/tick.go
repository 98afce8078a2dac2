// Package tui provides the Bubble Tea integration for the cat runner.
// It handles the terminal UI loop, input mapping and run history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame. Ticks carry the generation of the
// loop that scheduled them so a loop left over from a previous run is
// dropped instead of doubling the frame rate.
type TickMsg struct {
	Time time.Time
	gen  int
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame
// interval at the given rate.
func tickCmd(fps, gen int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}
