package view

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/moorebrett0/mypet/internal/pet"
)

// RenderOptions controls the plain-text layout.
type RenderOptions struct {
	BarWidth int
	Emoji    bool
}

// DefaultRenderOptions returns a ten-cell bar with emoji enabled.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{BarWidth: 10, Emoji: true}
}

// Render draws a frame as a block of text ending in a newline.
func Render(f Frame, o RenderOptions) string {
	if o.BarWidth <= 0 {
		o.BarWidth = DefaultRenderOptions().BarWidth
	}
	title := cases.Title(language.English)

	var b strings.Builder

	name := f.Name
	if name == "" {
		name = "your pet"
	}
	fmt.Fprintf(&b, "%s %s | mood: %s | %s\n",
		face(f, o.Emoji), name, title.String(f.Mood.String()), strings.ToLower(f.State.String()))

	for _, n := range f.Needs {
		mark := ""
		if n.Warn {
			mark = " " + warnMark(o.Emoji)
		}
		fmt.Fprintf(&b, "  %-8s %s%s\n", title.String(n.Name), progressBar(n.Value, n.Limits, o.BarWidth), mark)
	}

	fmt.Fprintf(&b, "  > %s\n", f.Status)

	if hint := commandHint(f); hint != "" {
		fmt.Fprintf(&b, "  %s\n", hint)
	}
	return b.String()
}

// progressBar renders a bar like ████████░░ 78
func progressBar(value int, l pet.NeedLimits, width int) string {
	span := l.Max - l.Min
	filled := 0
	if span > 0 {
		filled = (value - l.Min) * width / span
	}
	filled = max(0, min(filled, width))
	empty := width - filled
	return fmt.Sprintf("%s%s %3d", strings.Repeat("█", filled), strings.Repeat("░", empty), value)
}

func face(f Frame, emoji bool) string {
	switch {
	case f.Dead:
		return pick(emoji, "\U0001F480", "x_x")
	case f.State == pet.StateSleeping:
		return pick(emoji, "\U0001F634", "-_-")
	case f.Mood == pet.MoodSad:
		return pick(emoji, "\U0001F622", ":(")
	default:
		return pick(emoji, "\U0001F60A", ":)")
	}
}

func warnMark(emoji bool) string {
	return pick(emoji, "⚠️", "!")
}

func pick(emoji bool, fancy, plain string) string {
	if emoji {
		return fancy
	}
	return plain
}

func commandHint(f Frame) string {
	if f.Dead {
		return "[reset] [quit]"
	}
	var parts []string
	for _, a := range f.Actions {
		parts = append(parts, "["+a.String()+"]")
	}
	if f.CanStep {
		parts = append(parts, "[step]")
	}
	return strings.Join(parts, " ")
}
