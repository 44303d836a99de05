package pet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moorebrett0/mypet/internal/pet"
)

func TestClamp(t *testing.T) {
	limits := pet.NeedLimits{Min: 0, Max: 100}

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{name: "within limits", value: 50, want: 50},
		{name: "below minimum", value: -10, want: 0},
		{name: "above maximum", value: 150, want: 100},
		{name: "at minimum", value: 0, want: 0},
		{name: "at maximum", value: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pet.Clamp(tt.value, limits))
		})
	}
}

func TestClamp_NarrowLimits(t *testing.T) {
	limits := pet.NeedLimits{Min: 20, Max: 30}
	assert.Equal(t, 20, pet.Clamp(5, limits))
	assert.Equal(t, 25, pet.Clamp(25, limits))
	assert.Equal(t, 30, pet.Clamp(31, limits))
}

func TestDefaultLimits(t *testing.T) {
	l := pet.DefaultLimits()
	for _, nl := range []pet.NeedLimits{l.Hunger, l.Hygiene, l.Social, l.Sleep} {
		assert.Equal(t, pet.NeedLimits{Min: 0, Max: 100}, nl)
	}
}
