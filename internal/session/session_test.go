package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/grivetoutdoors/salestrainer/internal/persona"
)

func testPersona() persona.Persona {
	return persona.Persona{Label: "Walker", Profile: "Walks daily."}
}

func TestScoreRequested(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"bare trigger", "/score", true},
		{"embedded trigger", "ok let's /score this", true},
		{"case insensitive", "/SCORE", true},
		{"word without slash", "what's my score?", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ScoreRequested(tt.content))
		})
	}
}

func TestTranscriptViews(t *testing.T) {
	s := New("Taylor", testPersona())
	s.Append(RoleSystem, "internal prompt")
	s.Append(RoleAssistant, "Just looking around.")
	s.Append(RoleUser, "Welcome in! What brings you by?")
	s.Append(RoleUser, "We just got new trail shoes.")

	require.Equal(t, "Welcome in! What brings you by?\nWe just got new trail shoes.", s.UserTranscript())
	require.Equal(t,
		"Just looking around.\nWelcome in! What brings you by?\nWe just got new trail shoes.",
		s.CombinedTranscript())
}

func TestTurnsReturnsCopy(t *testing.T) {
	s := New("Taylor", testPersona())
	s.Append(RoleUser, "hi")

	turns := s.Turns()
	turns[0].Content = "mutated"
	require.Equal(t, "hi", s.Turns()[0].Content)
}

func TestNameDiscovery(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"my name is", "Sure! My name is Jordan, by the way.", "Jordan"},
		{"i'm contraction", "Hey, I'm Casey. Just browsing today.", "Casey"},
		{"im without apostrophe", "Im Morgan, thanks for asking.", "Morgan"},
		{"lowercase follower is not a name", "I'm just looking, thanks.", ""},
		{"stoplist word", "I'm Sure we can find something.", ""},
		{"no declaration", "These trail shoes look nice.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("Taylor", testPersona())
			s.Append(RoleAssistant, tt.content)
			require.Equal(t, tt.want, s.CustomerName())
		})
	}
}

func TestNameDiscoveryImmutable(t *testing.T) {
	s := New("Taylor", testPersona())
	s.Append(RoleAssistant, "I'm Casey.")
	s.Append(RoleAssistant, "Oh, and my name is Jordan, actually.")
	require.Equal(t, "Casey", s.CustomerName())
}

func TestNameDiscoveryIgnoresEmployeeTurns(t *testing.T) {
	s := New("Taylor", testPersona())
	s.Append(RoleUser, "Hi, I'm Taylor!")
	require.Equal(t, "", s.CustomerName())
}

func TestFinalizeCachesReport(t *testing.T) {
	s := New("Taylor", testPersona())
	s.Append(RoleAssistant, "I'm Casey, looking for walking shoes.")
	s.Append(RoleUser, "Welcome to Grivet! I'm Taylor — what's the main activity you're shopping for, Casey?")
	s.Append(RoleUser, "/score")

	first := s.Finalize(time.Date(2026, 7, 4, 15, 4, 5, 0, time.UTC))
	second := s.Finalize(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Equal(t, first, second)
	require.Equal(t, "07/04/2026 15:04:05", first.Timestamp)
	require.Equal(t, s.ID, first.SessionID)
	require.Equal(t, "Taylor", first.EmployeeName)
	require.Equal(t, "Walker", first.Persona)
	require.Equal(t, first.Scores.Total(), first.Total)
	require.NotEmpty(t, first.Notes)

	cached := s.FinalReport()
	require.NotNil(t, cached)
	require.Equal(t, first, *cached)
}

func TestFinalReportNilBeforeFinalize(t *testing.T) {
	s := New("Taylor", testPersona())
	require.Nil(t, s.FinalReport())
}

func TestSessionIDsUnique(t *testing.T) {
	a := New("Taylor", testPersona())
	b := New("Taylor", testPersona())
	require.NotEqual(t, a.ID, b.ID)
	require.Len(t, a.ID, 26)
}
