package pet

import "fmt"

// State is the pet's lifecycle state. StateDead is terminal.
type State int

const (
	StateActive State = iota
	StateSleeping
	StateDead
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateSleeping:
		return "Sleeping"
	case StateDead:
		return "Dead"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is a read-only copy of a Pet for use by presentation code.
type Snapshot struct {
	Health HealthStatus
	Limits Limits
	Mood   Mood
	State  State

	HungerStreak  int
	HungryWarning bool
	JustWokeUp    bool
}

// IsDead reports whether the snapshot was taken of a dead pet.
func (s Snapshot) IsDead() bool { return s.State == StateDead }

// IsSleeping reports whether the snapshot was taken of a sleeping pet.
func (s Snapshot) IsSleeping() bool { return s.State == StateSleeping }
