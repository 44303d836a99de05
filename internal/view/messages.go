package view

import (
	"fmt"

	"github.com/moorebrett0/mypet/internal/pet"
)

// Messages is the catalog of status lines shown under the pet.
type Messages struct {
	Welcome  string
	Action   string // formatted with the action name
	Sleeping string
	WokeUp   string
	Hungry   string
	Step     string
	Died     string
	Reset    string
}

// DefaultMessages returns the stock English catalog.
func DefaultMessages() Messages {
	return Messages{
		Welcome:  "Your pet is excited to see you!",
		Action:   "You %s your pet.",
		Sleeping: "Your pet is snoozing hard!",
		WokeUp:   "Your pet just woke up!",
		Hungry:   "Your pet is very hungry! Feed it soon!",
		Step:     "Time has passed. Your pet's needs have changed.",
		Died:     "Your pet has gone to the great beyond...",
		Reset:    "A new pet hatches!",
	}
}

// AfterAction picks the status line for a snapshot taken right after a.
func (m Messages) AfterAction(snap pet.Snapshot, a pet.Action) string {
	switch {
	case snap.IsDead():
		return m.Died
	case snap.IsSleeping():
		return m.Sleeping
	case a == pet.ActionSleep && snap.JustWokeUp:
		return m.WokeUp
	case snap.HungryWarning && a != pet.ActionFeed:
		return m.Hungry
	default:
		return fmt.Sprintf(m.Action, a)
	}
}

// AfterStep picks the status line for a snapshot taken right after a step.
func (m Messages) AfterStep(snap pet.Snapshot) string {
	if snap.IsDead() {
		return m.Died
	}
	return m.Step
}

// Idle keeps the last status line unless the pet has died.
func (m Messages) Idle(snap pet.Snapshot, last string) string {
	if snap.IsDead() {
		return m.Died
	}
	return last
}
