package llm

import "github.com/pkg/errors"

// Mode is the task-complexity tier controlling persona and model choice.
// It is a closed set: ParseMode rejects anything outside the three tiers.
type Mode int

const (
	// ModeWorker is the general-implementation tier and the default.
	ModeWorker Mode = iota
	// ModeArchitect is the high-reasoning tier for design work.
	ModeArchitect
	// ModeIntern is the lightweight tier for trivial tasks.
	ModeIntern
)

// Modes lists all valid modes in display order.
var Modes = []Mode{ModeArchitect, ModeWorker, ModeIntern}

// String returns the mode's canonical name.
func (m Mode) String() string {
	switch m {
	case ModeArchitect:
		return "architect"
	case ModeWorker:
		return "worker"
	case ModeIntern:
		return "intern"
	}
	return "unknown"
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "architect":
		return ModeArchitect, nil
	case "worker":
		return ModeWorker, nil
	case "intern":
		return ModeIntern, nil
	}
	return ModeWorker, errors.Errorf("invalid mode %q: must be architect, worker, or intern", s)
}
