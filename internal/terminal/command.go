package terminal

import (
	"strings"

	"github.com/moorebrett0/mypet/internal/pet"
)

// Command is one thing the owner can type.
type Command int

const (
	CmdUnknown Command = iota
	CmdFeed
	CmdPlay
	CmdClean
	CmdSleep
	CmdStep
	CmdStatus
	CmdReset
	CmdHelp
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdFeed:
		return "feed"
	case CmdPlay:
		return "play"
	case CmdClean:
		return "clean"
	case CmdSleep:
		return "sleep"
	case CmdStep:
		return "step"
	case CmdStatus:
		return "status"
	case CmdReset:
		return "reset"
	case CmdHelp:
		return "help"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action returns the pet action behind c, if any.
func (c Command) Action() (pet.Action, bool) {
	switch c {
	case CmdFeed:
		return pet.ActionFeed, true
	case CmdPlay:
		return pet.ActionPlay, true
	case CmdClean:
		return pet.ActionClean, true
	case CmdSleep:
		return pet.ActionSleep, true
	default:
		return 0, false
	}
}

// AllowedWhenDead reports whether c still does something once the pet is gone.
func (c Command) AllowedWhenDead() bool {
	switch c {
	case CmdStatus, CmdReset, CmdHelp, CmdQuit:
		return true
	default:
		return false
	}
}

// Single-letter shortcuts, matched on the whole input only.
var shortcuts = map[string]Command{
	"f": CmdFeed,
	"p": CmdPlay,
	"c": CmdClean,
	"s": CmdSleep,
	"n": CmdStep,
	"?": CmdHelp,
	"h": CmdHelp,
	"q": CmdQuit,
}

// ParseCommand maps free text onto a command. Matchers run in a fixed order
// so that "new pet" resets instead of playing and "restart" is not a rest.
func ParseCommand(text string) Command {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return CmdUnknown
	}
	if c, ok := shortcuts[lower]; ok {
		return c
	}

	switch {
	case matchesQuit(lower):
		return CmdQuit
	case matchesHelp(lower):
		return CmdHelp
	case matchesReset(lower):
		return CmdReset
	case matchesStatus(lower):
		return CmdStatus
	case matchesStep(lower):
		return CmdStep
	case matchesSleep(lower):
		return CmdSleep
	case matchesFeeding(lower):
		return CmdFeed
	case matchesCleaning(lower):
		return CmdClean
	case matchesPlay(lower):
		return CmdPlay
	}
	return CmdUnknown
}

func matchesQuit(text string) bool {
	patterns := []string{"quit", "exit", "bye", "goodbye"}
	return containsAny(text, patterns)
}

func matchesHelp(text string) bool {
	patterns := []string{"help", "commands", "what can i do"}
	return containsAny(text, patterns)
}

func matchesReset(text string) bool {
	patterns := []string{"reset", "restart", "new pet", "hatch", "start over"}
	return containsAny(text, patterns)
}

func matchesStatus(text string) bool {
	patterns := []string{"status", "how are", "how's", "hows", "look", "check"}
	return containsAny(text, patterns)
}

func matchesStep(text string) bool {
	patterns := []string{"step", "wait", "tick", "pass time", "later"}
	return containsAny(text, patterns)
}

func matchesSleep(text string) bool {
	patterns := []string{"sleep", "nap", "bed", "rest", "wake", "snooze"}
	return containsAny(text, patterns)
}

func matchesFeeding(text string) bool {
	patterns := []string{
		"feed", "food", "eat", "treat",
		"snack", "dinner", "lunch", "breakfast",
		"hungry", "nom",
	}
	return containsAny(text, patterns)
}

func matchesCleaning(text string) bool {
	patterns := []string{"clean", "wash", "bath", "brush", "groom", "scrub"}
	return containsAny(text, patterns)
}

func matchesPlay(text string) bool {
	patterns := []string{"play", "pet", "fetch", "ball", "toy", "cuddle", "pat"}
	return containsAny(text, patterns)
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
