package view

import "github.com/moorebrett0/mypet/internal/pet"

// Need is one attribute as the owner sees it.
type Need struct {
	Name   string
	Value  int
	Limits pet.NeedLimits
	Warn   bool // past the half-way mark in the bad direction
}

// Frame is everything a front end needs to draw the pet after one event.
type Frame struct {
	Name   string
	Needs  []Need
	Mood   pet.Mood
	State  pet.State
	Status string

	Dead          bool
	HungryWarning bool

	// Actions the owner may still trigger. Empty once the pet is dead.
	Actions []pet.Action
	CanStep bool
}

// NewFrame builds a frame from a pet snapshot and the status line to show.
func NewFrame(name string, snap pet.Snapshot, status string) Frame {
	h, l := snap.Health, snap.Limits
	f := Frame{
		Name: name,
		Needs: []Need{
			{Name: "hunger", Value: h.Hunger, Limits: l.Hunger, Warn: warnHigh(h.Hunger, l.Hunger)},
			{Name: "hygiene", Value: h.Hygiene, Limits: l.Hygiene, Warn: warnLow(h.Hygiene, l.Hygiene)},
			{Name: "social", Value: h.Social, Limits: l.Social, Warn: warnHigh(h.Social, l.Social)},
			{Name: "sleep", Value: h.Sleep, Limits: l.Sleep, Warn: warnLow(h.Sleep, l.Sleep)},
		},
		Mood:          snap.Mood,
		State:         snap.State,
		Status:        status,
		Dead:          snap.IsDead(),
		HungryWarning: snap.HungryWarning,
	}
	if !f.Dead {
		f.Actions = pet.Actions()
		f.CanStep = true
	}
	return f
}

// Need returns the named need, or false if there is none.
func (f Frame) Need(name string) (Need, bool) {
	for _, n := range f.Needs {
		if n.Name == name {
			return n, true
		}
	}
	return Need{}, false
}

// The warning thresholds mirror the ones that make the pet sad.
func warnHigh(v int, l pet.NeedLimits) bool {
	return float64(v) >= float64(l.Max)*pet.SadRatio
}

func warnLow(v int, l pet.NeedLimits) bool {
	return float64(v) <= float64(l.Max)*pet.SadRatio
}
