package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func evenCard(v int) Scorecard {
	card := make(Scorecard, len(Pillars))
	for _, p := range Pillars {
		card[p] = v
	}
	return card
}

func TestNotesDeterministic(t *testing.T) {
	card := evenCard(7)
	card[Discovery] = 9
	combined := "I'm shopping for trail shoes, my feet hurt on long hikes."

	first := Notes(card, combined, "Walker", "Pat")
	second := Notes(card, combined, "Walker", "Pat")
	require.Equal(t, first, second)
}

func TestNotesDoesNotMutateScorecard(t *testing.T) {
	card := evenCard(5)
	before := make(Scorecard, len(card))
	for p, v := range card {
		before[p] = v
	}

	Notes(card, "hello", "Walker", "")
	require.Equal(t, before, card)
}

func TestNotesStrengthSelection(t *testing.T) {
	card := evenCard(7)
	card[Discovery] = 9
	card[Closing] = 8

	out := Notes(card, "", "", "")
	// Best-first ordering: Discovery (9) before Closing (8).
	require.Contains(t, out,
		"Great job on digging into what the customer really needs and closing with confidence!")
}

func TestNotesGenericStrengthFallback(t *testing.T) {
	out := Notes(evenCard(7), "", "", "")
	require.Contains(t, out, "Nice work staying engaged with your customer!")
}

func TestNotesFocusSelection(t *testing.T) {
	card := evenCard(7)
	card[Upselling] = 2
	card[Email] = 3

	out := Notes(card, "", "", "")
	// Worst-first ordering: Upselling (2) before Email (3).
	require.Contains(t, out,
		"Next time, offer one low-pressure add-on like a tech sock or nutrition and tie the email ask to receipts, the 3-D scan, or group runs.")
}

func TestNotesFocusOmittedWhenNothingWeak(t *testing.T) {
	out := Notes(evenCard(10), "", "", "")
	require.NotContains(t, out, "Next time,")
}

func TestNotesPainNudge(t *testing.T) {
	card := evenCard(7)

	out := Notes(card, "My feet hurt after long runs.", "", "")
	require.Contains(t, out, "FootBalance")

	// Once insoles came up in the conversation, the fitting nudge is moot.
	out = Notes(card, "My feet hurt after long runs. Let's look at an insole.", "", "")
	require.NotContains(t, out, "FootBalance")
}

func TestNotesHeadlampNudge(t *testing.T) {
	card := evenCard(7)

	out := Notes(card, "I want shoes for hiking at dawn.", "", "")
	require.Contains(t, out, "headlamp")

	// Once a headlamp was part of the conversation the nudge is moot.
	out = Notes(card, "I want shoes for hiking at dawn. Have you seen our headlamps?", "", "")
	require.NotContains(t, out, "headlamp")
}

func TestNotesNudgeLimit(t *testing.T) {
	// A bare transcript triggers the email and guarantee nudges; nothing else
	// may sneak in past the two-nudge cap.
	out := Notes(evenCard(7), "just browsing", "", "")
	require.Contains(t, out, "email ask")
	require.Contains(t, out, "30 day shoe guarantee")
	require.NotContains(t, out, "FootBalance")
}

func TestNotesPersonaTip(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"marathon keyword", "Intense Marathon Runner", "For a Intense Marathon Runner, lead with performance, race goals, and fueling strategy."},
		{"explorer keyword", "Explorer Outdoor Enthusiast", "talk trips and trail readiness"},
		{"unknown label falls back", "Mystery Shopper", "For a Mystery Shopper, keep it personal and value-driven."},
		{"blank label", "", "Keep it personal and value-driven with every customer."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Notes(evenCard(7), "", tt.label, "")
			require.Contains(t, out, tt.want)
		})
	}
}

func TestNotesTerminalPunctuation(t *testing.T) {
	cards := []Scorecard{evenCard(0), evenCard(7), evenCard(10)}
	for _, card := range cards {
		out := Notes(card, "hello there", "Walker", "Sam")
		require.NotEmpty(t, out)
		last := out[len(out)-1]
		require.True(t, strings.ContainsRune(".!?", rune(last)), "notes must end with terminal punctuation: %q", out)
	}
}
