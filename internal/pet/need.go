package pet

// NeedLimits bounds a single attribute.
type NeedLimits struct {
	Min int
	Max int
}

// Per-attribute bounds. They are declared separately so one need can be
// rebalanced without touching the others.
var (
	HungerLimits  = NeedLimits{Min: 0, Max: 100}
	HygieneLimits = NeedLimits{Min: 0, Max: 100}
	SocialLimits  = NeedLimits{Min: 0, Max: 100}
	SleepLimits   = NeedLimits{Min: 0, Max: 100}
)

// Limits groups the bounds of all four attributes.
type Limits struct {
	Hunger  NeedLimits
	Hygiene NeedLimits
	Social  NeedLimits
	Sleep   NeedLimits
}

// DefaultLimits returns the bounds every new pet is created with.
func DefaultLimits() Limits {
	return Limits{
		Hunger:  HungerLimits,
		Hygiene: HygieneLimits,
		Social:  SocialLimits,
		Sleep:   SleepLimits,
	}
}

// Clamp pins v into [l.Min, l.Max].
func Clamp(v int, l NeedLimits) int {
	return max(l.Min, min(v, l.Max))
}
