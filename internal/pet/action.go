package pet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAction is returned when an Action outside the fixed set reaches
// the engine. It signals a programming error, not a runtime condition.
var ErrInvalidAction = errors.New("invalid action")

// Action is something the owner does to the pet.
type Action int

const (
	ActionFeed Action = iota + 1
	ActionPlay
	ActionClean
	ActionSleep
)

// Actions lists every valid action in display order.
func Actions() []Action {
	return []Action{ActionFeed, ActionPlay, ActionClean, ActionSleep}
}

// Valid reports whether a is one of the four known actions.
func (a Action) Valid() bool {
	return a >= ActionFeed && a <= ActionSleep
}

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionClean:
		return "clean"
	case ActionSleep:
		return "sleep"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction maps a lower- or upper-case action name to an Action.
func ParseAction(s string) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Actions() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}
