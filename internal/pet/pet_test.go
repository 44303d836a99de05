package pet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/moorebrett0/mypet/internal/pet"
)

type PetTestSuite struct {
	suite.Suite
	pet     *pet.Pet
	initial pet.HealthStatus
}

func TestPetTestSuite(t *testing.T) {
	suite.Run(t, new(PetTestSuite))
}

func (s *PetTestSuite) SetupTest() {
	s.initial = pet.HealthStatus{Hunger: 30, Hygiene: 60, Social: 30, Sleep: 60}
	s.pet = pet.New()
	s.pet.SetHealth(s.initial)
}

func (s *PetTestSuite) interact(actions ...pet.Action) {
	for _, a := range actions {
		s.Require().NoError(s.pet.InteractWith(a))
	}
}

func (s *PetTestSuite) TestNew() {
	p := pet.New()
	s.Equal(pet.HealthStatus{Hunger: 0, Hygiene: 100, Social: 0, Sleep: 100}, p.Health())
	s.Equal(pet.StateActive, p.State())
	s.Equal(pet.MoodHappy, p.Mood())
	s.False(p.IsHungryWarning())
	s.False(p.IsJustWokeUp())
	s.Equal(0, p.HungerStreak())
}

func (s *PetTestSuite) TestAccessors() {
	s.Equal(30, s.pet.Hunger())
	s.Equal(60, s.pet.Hygiene())
	s.Equal(30, s.pet.Social())
	s.Equal(60, s.pet.Sleep())

	for _, l := range []pet.NeedLimits{
		s.pet.HungerLimits(), s.pet.HygieneLimits(), s.pet.SocialLimits(), s.pet.SleepLimits(),
	} {
		s.Equal(0, l.Min)
		s.Equal(100, l.Max)
	}
}

func (s *PetTestSuite) TestSetters() {
	s.pet.SetHealth(pet.HealthStatus{Hunger: 50, Hygiene: 50, Social: 50, Sleep: 50})
	s.Equal(pet.HealthStatus{Hunger: 50, Hygiene: 50, Social: 50, Sleep: 50}, s.pet.Health())

	s.pet.SetMood(pet.MoodSad)
	s.Equal(pet.MoodSad, s.pet.Mood())
	s.IsType(pet.SadMood{}, s.pet.Strategy())

	s.pet.SetState(pet.StateDead)
	s.Equal(pet.StateDead, s.pet.State())
	s.pet.SetState(pet.StateSleeping)
	s.Equal(pet.StateSleeping, s.pet.State())
}

func (s *PetTestSuite) TestStep_HappyMood() {
	s.pet.Step()
	s.Equal(pet.HealthStatus{Hunger: 35, Hygiene: 55, Social: 35, Sleep: 55}, s.pet.Health())
}

func (s *PetTestSuite) TestStep_SadMood() {
	s.pet.SetMood(pet.MoodSad)
	s.pet.Step()
	s.Equal(pet.HealthStatus{Hunger: 40, Hygiene: 50, Social: 40, Sleep: 50}, s.pet.Health())
}

func (s *PetTestSuite) TestStep_Sleeping() {
	s.pet.SetState(pet.StateSleeping)
	s.pet.Step()
	s.Equal(pet.HealthStatus{Hunger: 35, Hygiene: 55, Social: 30, Sleep: 70}, s.pet.Health())
	s.Equal(pet.StateSleeping, s.pet.State())
}

func (s *PetTestSuite) TestStep_SleepingIgnoresMood() {
	s.pet.SetMood(pet.MoodSad)
	s.pet.SetState(pet.StateSleeping)
	s.pet.Step()
	s.Equal(pet.HealthStatus{Hunger: 35, Hygiene: 55, Social: 30, Sleep: 70}, s.pet.Health())
}

func (s *PetTestSuite) TestStep_SleepingClamps() {
	s.pet.SetHealth(pet.HealthStatus{Hunger: 97, Hygiene: 4, Social: 30, Sleep: 95})
	s.pet.SetState(pet.StateSleeping)
	s.pet.Step()
	s.Equal(pet.HealthStatus{Hunger: 100, Hygiene: 0, Social: 30, Sleep: 100}, s.pet.Health())
	s.True(s.pet.IsDead())
}

func (s *PetTestSuite) TestStep_MoodTurnsSad() {
	for i := 0; i < 10; i++ {
		s.pet.Step()
	}
	s.Equal(pet.MoodSad, s.pet.Mood())
}

func (s *PetTestSuite) TestStep_FromNewPetTurnsSad() {
	p := pet.New()
	for i := 0; i < 10; i++ {
		p.Step()
	}
	s.Equal(pet.MoodSad, p.Mood())
	s.Equal(pet.HealthStatus{Hunger: 65, Hygiene: 35, Social: 65, Sleep: 35}, p.Health())
	s.False(p.IsDead())
}

func (s *PetTestSuite) TestInteractWith_HappyMood() {
	tests := []struct {
		action pet.Action
		want   pet.HealthStatus
	}{
		{pet.ActionFeed, pet.HealthStatus{Hunger: 15, Hygiene: 60, Social: 30, Sleep: 60}},
		{pet.ActionPlay, pet.HealthStatus{Hunger: 30, Hygiene: 60, Social: 15, Sleep: 60}},
		{pet.ActionClean, pet.HealthStatus{Hunger: 30, Hygiene: 75, Social: 30, Sleep: 60}},
		{pet.ActionSleep, pet.HealthStatus{Hunger: 30, Hygiene: 60, Social: 30, Sleep: 75}},
	}
	for _, tt := range tests {
		s.Run(tt.action.String(), func() {
			s.SetupTest()
			s.interact(tt.action)
			s.Equal(tt.want, s.pet.Health())
		})
	}
}

func (s *PetTestSuite) TestInteractWith_SadMood() {
	tests := []struct {
		action pet.Action
		want   pet.HealthStatus
	}{
		{pet.ActionFeed, pet.HealthStatus{Hunger: 20, Hygiene: 60, Social: 30, Sleep: 60}},
		{pet.ActionPlay, pet.HealthStatus{Hunger: 35, Hygiene: 60, Social: 20, Sleep: 60}},
		{pet.ActionClean, pet.HealthStatus{Hunger: 35, Hygiene: 70, Social: 30, Sleep: 60}},
		{pet.ActionSleep, pet.HealthStatus{Hunger: 35, Hygiene: 60, Social: 30, Sleep: 70}},
	}
	for _, tt := range tests {
		s.Run(tt.action.String(), func() {
			s.SetupTest()
			s.pet.SetMood(pet.MoodSad)
			s.interact(tt.action)
			s.Equal(tt.want, s.pet.Health())
		})
	}
}

func (s *PetTestSuite) TestInteractWith_FeedFromSixty() {
	s.pet.SetHealth(pet.HealthStatus{Hunger: 60, Hygiene: 60, Social: 60, Sleep: 60})
	s.interact(pet.ActionFeed)
	s.Equal(pet.HealthStatus{Hunger: 45, Hygiene: 60, Social: 60, Sleep: 60}, s.pet.Health())
}

func (s *PetTestSuite) TestInteractWith_InvalidAction() {
	err := s.pet.InteractWith(pet.Action(0))
	s.ErrorIs(err, pet.ErrInvalidAction)
	s.Equal(s.initial, s.pet.Health())
	s.Equal(pet.StateActive, s.pet.State())
}

func (s *PetTestSuite) TestInteractWith_SleepToggle() {
	s.interact(pet.ActionSleep)
	s.Equal(pet.StateSleeping, s.pet.State())
	s.Equal(75, s.pet.Sleep())
	s.False(s.pet.IsJustWokeUp())

	s.interact(pet.ActionSleep)
	s.Equal(pet.StateActive, s.pet.State())
	s.Equal(75, s.pet.Sleep())
	s.True(s.pet.IsJustWokeUp())

	s.interact(pet.ActionSleep)
	s.False(s.pet.IsJustWokeUp())
}

func (s *PetTestSuite) TestInteractWith_WakingDoesNotBoostSleep() {
	s.pet.SetState(pet.StateSleeping)
	s.interact(pet.ActionSleep)
	s.Equal(pet.StateActive, s.pet.State())
	s.Equal(s.initial.Sleep, s.pet.Sleep())
	s.True(s.pet.IsJustWokeUp())
}

func (s *PetTestSuite) TestInteractWith_BlockedWhileSleeping() {
	s.pet.SetState(pet.StateSleeping)
	s.interact(pet.ActionFeed, pet.ActionPlay, pet.ActionClean)
	s.Equal(s.initial, s.pet.Health())
	s.Equal(pet.StateSleeping, s.pet.State())
}

func (s *PetTestSuite) TestDead_IsTerminal() {
	s.pet.SetState(pet.StateDead)
	s.pet.SetMood(pet.MoodSad)

	s.interact(pet.ActionFeed, pet.ActionPlay, pet.ActionClean, pet.ActionSleep)
	s.pet.Step()
	s.pet.UpdateMood()
	s.pet.UpdateDeath()

	s.Equal(s.initial, s.pet.Health())
	s.Equal(pet.MoodSad, s.pet.Mood())
	s.Equal(pet.StateDead, s.pet.State())
	s.Equal(0, s.pet.HungerStreak())
}

func (s *PetTestSuite) TestUpdateMood() {
	s.pet.SetHealth(pet.HealthStatus{Hunger: 100, Hygiene: 0, Social: 100, Sleep: 0})
	s.pet.UpdateMood()
	s.Equal(pet.MoodSad, s.pet.Mood())
}

func (s *PetTestSuite) TestUpdateMood_Thresholds() {
	tests := []struct {
		name   string
		health pet.HealthStatus
		want   pet.Mood
	}{
		{name: "all fine", health: pet.HealthStatus{Hunger: 10, Hygiene: 90, Social: 10, Sleep: 90}, want: pet.MoodHappy},
		{name: "hunger at half", health: pet.HealthStatus{Hunger: 50, Hygiene: 90, Social: 10, Sleep: 90}, want: pet.MoodSad},
		{name: "hygiene at half", health: pet.HealthStatus{Hunger: 10, Hygiene: 50, Social: 10, Sleep: 90}, want: pet.MoodSad},
		{name: "social at half", health: pet.HealthStatus{Hunger: 10, Hygiene: 90, Social: 50, Sleep: 90}, want: pet.MoodSad},
		{name: "sleep at half", health: pet.HealthStatus{Hunger: 10, Hygiene: 90, Social: 10, Sleep: 50}, want: pet.MoodSad},
		{name: "just inside", health: pet.HealthStatus{Hunger: 24, Hygiene: 51, Social: 49, Sleep: 51}, want: pet.MoodHappy},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := pet.New()
			p.SetHealth(tt.health)
			p.UpdateMood()
			s.Equal(tt.want, p.Mood())
		})
	}
}

func (s *PetTestSuite) TestUpdateMood_SkippedWhenDead() {
	s.pet.SetState(pet.StateDead)
	s.pet.SetHealth(pet.HealthStatus{Hunger: 100, Hygiene: 0, Social: 100, Sleep: 0})
	s.pet.UpdateMood()
	s.Equal(pet.MoodHappy, s.pet.Mood())
}

func (s *PetTestSuite) TestUpdateMood_HungerStreak() {
	// Hunger stays at 30 (>= 25) for every evaluation until the pet is fed.
	s.interact(pet.ActionPlay, pet.ActionClean)
	s.Equal(pet.MoodHappy, s.pet.Mood())
	s.Equal(2, s.pet.HungerStreak())

	s.interact(pet.ActionSleep, pet.ActionSleep)
	s.pet.UpdateMood()
	s.Equal(pet.MoodSad, s.pet.Mood())
	s.True(s.pet.IsHungryWarning())

	s.interact(pet.ActionFeed)
	s.pet.UpdateMood()
	s.Equal(pet.MoodHappy, s.pet.Mood())
	s.Equal(0, s.pet.HungerStreak())
	s.False(s.pet.IsHungryWarning())
}

func (s *PetTestSuite) TestIsHungryWarning() {
	s.False(s.pet.IsHungryWarning())

	s.pet.SetHealth(pet.HealthStatus{Hunger: 60, Hygiene: 100, Social: 0, Sleep: 100})
	s.interact(pet.ActionClean, pet.ActionPlay, pet.ActionSleep)
	s.True(s.pet.IsHungryWarning())
}

func (s *PetTestSuite) TestUpdateDeath() {
	s.pet.SetHealth(pet.HealthStatus{Hunger: 100, Hygiene: 0, Social: 100, Sleep: 0})
	s.pet.UpdateDeath()
	s.Equal(pet.StateDead, s.pet.State())
	s.True(s.pet.IsDead())
}

func (s *PetTestSuite) TestUpdateDeath_EachFatalBound() {
	tests := []struct {
		name   string
		health pet.HealthStatus
		dead   bool
	}{
		{name: "starved", health: pet.HealthStatus{Hunger: 100, Hygiene: 60, Social: 30, Sleep: 60}, dead: true},
		{name: "filthy", health: pet.HealthStatus{Hunger: 30, Hygiene: 0, Social: 30, Sleep: 60}, dead: true},
		{name: "lonely", health: pet.HealthStatus{Hunger: 30, Hygiene: 60, Social: 100, Sleep: 60}, dead: true},
		{name: "exhausted", health: pet.HealthStatus{Hunger: 30, Hygiene: 60, Social: 30, Sleep: 0}, dead: true},
		{name: "one away", health: pet.HealthStatus{Hunger: 99, Hygiene: 1, Social: 99, Sleep: 1}, dead: false},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := pet.New()
			p.SetHealth(tt.health)
			p.UpdateDeath()
			s.Equal(tt.dead, p.IsDead())
		})
	}
}

func (s *PetTestSuite) TestInteractWith_SadNeglectAddsFive() {
	for _, a := range []pet.Action{pet.ActionPlay, pet.ActionClean, pet.ActionSleep} {
		s.Run(a.String(), func() {
			s.SetupTest()
			s.pet.SetMood(pet.MoodSad)
			s.interact(a)
			s.Equal(s.initial.Hunger+5, s.pet.Hunger())
		})
	}
}

func (s *PetTestSuite) TestHealthStaysInLimits() {
	p := pet.New()
	script := []pet.Action{
		pet.ActionPlay, pet.ActionClean, pet.ActionSleep, pet.ActionFeed,
		pet.ActionSleep, pet.ActionPlay, pet.ActionClean, pet.ActionFeed,
	}
	for i := 0; i < 200 && !p.IsDead(); i++ {
		if i%3 == 0 {
			s.Require().NoError(p.InteractWith(script[i%len(script)]))
		} else {
			p.Step()
		}
		h, l := p.Health(), p.Limits()
		s.GreaterOrEqual(h.Hunger, l.Hunger.Min)
		s.LessOrEqual(h.Hunger, l.Hunger.Max)
		s.GreaterOrEqual(h.Hygiene, l.Hygiene.Min)
		s.LessOrEqual(h.Hygiene, l.Hygiene.Max)
		s.GreaterOrEqual(h.Social, l.Social.Min)
		s.LessOrEqual(h.Social, l.Social.Max)
		s.GreaterOrEqual(h.Sleep, l.Sleep.Min)
		s.LessOrEqual(h.Sleep, l.Sleep.Max)
		s.Equal(p.Mood().Strategy(), p.Strategy())
	}
}

func (s *PetTestSuite) TestSnapshot() {
	s.pet.SetState(pet.StateSleeping)
	snap := s.pet.Snapshot()
	s.Equal(s.initial, snap.Health)
	s.Equal(pet.DefaultLimits(), snap.Limits)
	s.True(snap.IsSleeping())
	s.False(snap.IsDead())
	s.Equal(pet.MoodHappy, snap.Mood)
}
