package pet

import "fmt"

// HealthStatus is an immutable snapshot of the four needs.
// Lower hunger and social values mean a more satisfied pet; higher hygiene
// and sleep values mean the same.
type HealthStatus struct {
	Hunger  int `json:"hunger"`
	Hygiene int `json:"hygiene"`
	Social  int `json:"social"`
	Sleep   int `json:"sleep"`
}

func (h HealthStatus) String() string {
	return fmt.Sprintf("HealthStatus{hunger=%d, hygiene=%d, social=%d, sleep=%d}",
		h.Hunger, h.Hygiene, h.Social, h.Sleep)
}

// clampTo pins every field into its bounds.
func (h HealthStatus) clampTo(l Limits) HealthStatus {
	return HealthStatus{
		Hunger:  Clamp(h.Hunger, l.Hunger),
		Hygiene: Clamp(h.Hygiene, l.Hygiene),
		Social:  Clamp(h.Social, l.Social),
		Sleep:   Clamp(h.Sleep, l.Sleep),
	}
}

// ApplyDecay adds the profile's deltas to s, clamping each field to the
// default limits.
func ApplyDecay(s HealthStatus, p MoodDecayProfile) HealthStatus {
	return HealthStatus{
		Hunger:  s.Hunger + p.Hunger,
		Hygiene: s.Hygiene + p.Hygiene,
		Social:  s.Social + p.Social,
		Sleep:   s.Sleep + p.Sleep,
	}.clampTo(DefaultLimits())
}
