package pet

import "fmt"

// Mood selects which boost and decay tables drive the pet.
type Mood int

const (
	MoodHappy Mood = iota
	MoodSad
)

func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "HAPPY"
	case MoodSad:
		return "SAD"
	default:
		return fmt.Sprintf("MOOD(%d)", int(m))
	}
}

// MoodBoostProfile holds the deltas applied on a direct action.
type MoodBoostProfile struct {
	Hunger  int
	Hygiene int
	Social  int
	Sleep   int
}

// MoodDecayProfile holds the deltas applied on every time step.
type MoodDecayProfile struct {
	Hunger  int
	Hygiene int
	Social  int
	Sleep   int
}

var (
	happyBoost = MoodBoostProfile{Hunger: -15, Hygiene: 15, Social: -15, Sleep: 15}
	happyDecay = MoodDecayProfile{Hunger: 5, Hygiene: -5, Social: 5, Sleep: -5}

	sadBoost = MoodBoostProfile{Hunger: -10, Hygiene: 10, Social: -10, Sleep: 10}
	sadDecay = MoodDecayProfile{Hunger: 10, Hygiene: -10, Social: 10, Sleep: -10}
)

// neglectPenalty is the extra hunger a sad pet gains when the owner does
// anything but feed it while it is already past half hungry.
const neglectPenalty = 5

// Strategy computes how a pet in a given mood reacts to actions and time.
type Strategy interface {
	RespondToAction(a Action, p *Pet) error
	Step(p *Pet)
	Boost() MoodBoostProfile
	Decay() MoodDecayProfile
}

// Strategy returns the strategy for m. Anything that is not sad is happy.
func (m Mood) Strategy() Strategy {
	if m == MoodSad {
		return SadMood{}
	}
	return HappyMood{}
}

// HappyMood boosts by 15 and decays by 5.
type HappyMood struct{}

func (HappyMood) Boost() MoodBoostProfile { return happyBoost }
func (HappyMood) Decay() MoodDecayProfile { return happyDecay }

func (h HappyMood) RespondToAction(a Action, p *Pet) error {
	next, err := boosted(p.Health(), a, h.Boost(), p.Limits())
	if err != nil {
		return err
	}
	p.SetHealth(next)
	return nil
}

func (h HappyMood) Step(p *Pet) {
	p.SetHealth(ApplyDecay(p.Health(), h.Decay()))
}

// SadMood boosts by 10, decays by 10 and punishes neglect.
type SadMood struct{}

func (SadMood) Boost() MoodBoostProfile { return sadBoost }
func (SadMood) Decay() MoodDecayProfile { return sadDecay }

func (s SadMood) RespondToAction(a Action, p *Pet) error {
	old := p.Health()
	limits := p.Limits()

	next, err := boosted(old, a, s.Boost(), limits)
	if err != nil {
		return err
	}

	// Threshold uses the pre-action hunger and integer halving of the max.
	if a != ActionFeed && old.Hunger < limits.Hunger.Max/2 {
		next.Hunger = Clamp(next.Hunger+neglectPenalty, limits.Hunger)
	}
	p.SetHealth(next)
	return nil
}

func (s SadMood) Step(p *Pet) {
	p.SetHealth(ApplyDecay(p.Health(), s.Decay()))
}

// boosted applies the boost for a single action to the matching field.
func boosted(h HealthStatus, a Action, b MoodBoostProfile, l Limits) (HealthStatus, error) {
	switch a {
	case ActionFeed:
		h.Hunger = Clamp(h.Hunger+b.Hunger, l.Hunger)
	case ActionPlay:
		h.Social = Clamp(h.Social+b.Social, l.Social)
	case ActionClean:
		h.Hygiene = Clamp(h.Hygiene+b.Hygiene, l.Hygiene)
	case ActionSleep:
		h.Sleep = Clamp(h.Sleep+b.Sleep, l.Sleep)
	default:
		return h, fmt.Errorf("%w: %s", ErrInvalidAction, a)
	}
	return h, nil
}
