package pet

import "fmt"

const (
	// hungerNeglectRatio is the share of max hunger at which the streak counts up.
	hungerNeglectRatio = 0.25
	// hungerStreakLimit consecutive counted evaluations raise the hungry warning.
	hungerStreakLimit = 3
	// SadRatio is the share of max past which a need makes the pet sad.
	SadRatio = 0.5
)

// Sleep recovery per step, independent of mood.
const (
	sleepRecovery    = 10
	sleepHungerGain  = 5
	sleepHygieneLoss = 5
)

// Pet owns the health, mood and lifecycle of one virtual pet.
// A Pet is not safe for concurrent use; callers serialize access.
type Pet struct {
	limits Limits
	health HealthStatus
	mood   Mood
	state  State

	hungerStreak int
	justWokeUp   bool
}

// New creates a pet that is fed, clean, content and rested.
func New() *Pet {
	l := DefaultLimits()
	return &Pet{
		limits: l,
		health: HealthStatus{
			Hunger:  l.Hunger.Min,
			Hygiene: l.Hygiene.Max,
			Social:  l.Social.Min,
			Sleep:   l.Sleep.Max,
		},
		mood:  MoodHappy,
		state: StateActive,
	}
}

// InteractWith applies an owner action. Dead pets ignore everything and
// sleeping pets ignore everything but ActionSleep, which wakes them.
func (p *Pet) InteractWith(a Action) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidAction, a)
	}
	if p.IsDead() {
		return nil
	}

	if a == ActionSleep {
		p.toggleSleep()
		// Only falling asleep recovers sleep; waking does not.
		if p.IsSleeping() {
			if err := p.Strategy().RespondToAction(a, p); err != nil {
				return err
			}
		}
		p.UpdateMood()
		p.UpdateDeath()
		return nil
	}

	if p.IsSleeping() {
		return nil
	}

	if err := p.Strategy().RespondToAction(a, p); err != nil {
		return err
	}
	p.UpdateMood()
	p.UpdateDeath()
	return nil
}

// Step advances time by one tick.
func (p *Pet) Step() {
	if p.IsDead() {
		return
	}
	if p.IsSleeping() {
		p.applySleepStep()
	} else {
		p.Strategy().Step(p)
	}
	p.UpdateMood()
	p.UpdateDeath()
}

// applySleepStep recovers sleep while the pet gets hungrier and dirtier.
func (p *Pet) applySleepStep() {
	h := p.health
	p.health = HealthStatus{
		Hunger:  Clamp(h.Hunger+sleepHungerGain, p.limits.Hunger),
		Hygiene: Clamp(h.Hygiene-sleepHygieneLoss, p.limits.Hygiene),
		Social:  h.Social,
		Sleep:   Clamp(h.Sleep+sleepRecovery, p.limits.Sleep),
	}
}

func (p *Pet) toggleSleep() {
	if p.state == StateSleeping {
		p.state = StateActive
		p.justWokeUp = true
		return
	}
	p.state = StateSleeping
	p.justWokeUp = false
}

// updateStreak counts consecutive evaluations with hunger at or above a
// quarter of its max.
func (p *Pet) updateStreak() {
	if float64(p.health.Hunger) >= float64(p.limits.Hunger.Max)*hungerNeglectRatio {
		p.hungerStreak++
		return
	}
	p.hungerStreak = 0
}

// UpdateMood re-derives the mood from the current health. No-op when dead.
func (p *Pet) UpdateMood() {
	if p.IsDead() {
		return
	}
	p.updateStreak()

	h, l := p.health, p.limits
	switch {
	case p.hungerStreak >= hungerStreakLimit:
		p.SetMood(MoodSad)
	case float64(h.Hunger) >= float64(l.Hunger.Max)*SadRatio,
		float64(h.Hygiene) <= float64(l.Hygiene.Max)*SadRatio,
		float64(h.Social) >= float64(l.Social.Max)*SadRatio,
		float64(h.Sleep) <= float64(l.Sleep.Max)*SadRatio:
		p.SetMood(MoodSad)
	default:
		p.SetMood(MoodHappy)
	}
}

// UpdateDeath kills the pet the moment any need touches its fatal bound.
func (p *Pet) UpdateDeath() {
	if p.IsDead() {
		return
	}
	h, l := p.health, p.limits
	if h.Hunger == l.Hunger.Max ||
		h.Hygiene == l.Hygiene.Min ||
		h.Social == l.Social.Max ||
		h.Sleep == l.Sleep.Min {
		p.state = StateDead
	}
}

// Strategy returns the strategy matching the current mood.
func (p *Pet) Strategy() Strategy { return p.mood.Strategy() }

func (p *Pet) Health() HealthStatus { return p.health }
func (p *Pet) Hunger() int { return p.health.Hunger }
func (p *Pet) Hygiene() int { return p.health.Hygiene }
func (p *Pet) Social() int { return p.health.Social }
func (p *Pet) Sleep() int { return p.health.Sleep }

func (p *Pet) Limits() Limits { return p.limits }
func (p *Pet) HungerLimits() NeedLimits { return p.limits.Hunger }
func (p *Pet) HygieneLimits() NeedLimits { return p.limits.Hygiene }
func (p *Pet) SocialLimits() NeedLimits { return p.limits.Social }
func (p *Pet) SleepLimits() NeedLimits { return p.limits.Sleep }

func (p *Pet) Mood() Mood { return p.mood }
func (p *Pet) State() State { return p.state }

// HungerStreak is the number of consecutive mood evaluations with elevated hunger.
func (p *Pet) HungerStreak() int { return p.hungerStreak }

func (p *Pet) IsDead() bool { return p.state == StateDead }
func (p *Pet) IsSleeping() bool { return p.state == StateSleeping }
func (p *Pet) IsJustWokeUp() bool { return p.justWokeUp }
func (p *Pet) IsHungryWarning() bool { return p.hungerStreak >= hungerStreakLimit }

// SetHealth replaces the health wholesale without clamping or re-evaluating
// mood and death.
func (p *Pet) SetHealth(h HealthStatus) { p.health = h }

// SetMood overrides the mood and with it the active strategy.
func (p *Pet) SetMood(m Mood) { p.mood = m }

// SetState overrides the lifecycle state, bypassing transition rules.
func (p *Pet) SetState(s State) { p.state = s }

// Snapshot copies the pet's observable state.
func (p *Pet) Snapshot() Snapshot {
	return Snapshot{
		Health:        p.health,
		Limits:        p.limits,
		Mood:          p.mood,
		State:         p.state,
		HungerStreak:  p.hungerStreak,
		HungryWarning: p.IsHungryWarning(),
		JustWokeUp:    p.justWokeUp,
	}
}
