package core

// Intent is a logical input request, abstracted from physical key presses
// and button clicks.
type Intent int

const (
	IntentNone    Intent = iota
	IntentStart          // Space, Up, Enter - begin a run from idle
	IntentJump           // Space, Up - jump while running
	IntentRestart        // R - start again after game over
	IntentQuit           // Q, Ctrl+C - leave the program
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentStart:
		return "Start"
	case IntentJump:
		return "Jump"
	case IntentRestart:
		return "Restart"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
