package domain

// Key is a keystroke as far as the countdown cares.
type Key int

const (
	// KeyOther is any key without a binding. It is ignored.
	KeyOther Key = iota
	// KeyQuit ends the countdown early.
	KeyQuit
	// KeyPause toggles between running and paused.
	KeyPause
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyPause:
		return "pause"
	default:
		return "other"
	}
}

// Outcome says how a countdown ended. The CLI maps each outcome to its own
// exit code.
type Outcome int

const (
	// OutcomeFinished means the remaining time reached zero.
	OutcomeFinished Outcome = iota
	// OutcomeQuit means the user left before the end.
	OutcomeQuit
)

func (o Outcome) String() string {
	if o == OutcomeQuit {
		return "quit"
	}
	return "finished"
}
