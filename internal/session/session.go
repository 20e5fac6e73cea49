// Package session owns the per-session training state: the ordered turn
// transcript, the opportunistically discovered customer name, and the final
// report. All state lives on an explicit Session value handed to
// collaborators — there are no package-level globals.
package session

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/grivetoutdoors/salestrainer/internal/persona"
	"github.com/grivetoutdoors/salestrainer/internal/scoring"
)

// Session is the single-occupancy context for one training run: one
// employee, one persona, one transcript, one scoring pass.
type Session struct {
	ID           string
	EmployeeName string
	Persona      persona.Persona
	StartedAt    time.Time

	turns        []Turn
	customerName string
	report       *Report
}

// New creates a session with a fresh ULID.
func New(employeeName string, p persona.Persona) *Session {
	now := time.Now()
	id := ulid.MustNew(ulid.Timestamp(now), rand.Reader)
	return &Session{
		ID:           id.String(),
		EmployeeName: employeeName,
		Persona:      p,
		StartedAt:    now,
	}
}

// Append records a turn. Assistant turns are scanned for a customer name
// declaration until one is found; once set the name is immutable.
func (s *Session) Append(role Role, content string) {
	s.turns = append(s.turns, Turn{Role: role, Content: content})
	if role == RoleAssistant && s.customerName == "" {
		if name := discoverName(content); name != "" {
			s.customerName = name
		}
	}
}

// Turns returns a copy of the ordered transcript.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// CustomerName returns the discovered customer name, or "" when the customer
// never shared one.
func (s *Session) CustomerName() string { return s.customerName }

// UserTranscript is the employee-only view used for strict scoring.
func (s *Session) UserTranscript() string {
	return joinTurns(s.turns, func(r Role) bool { return r == RoleUser })
}

// CombinedTranscript is the employee+customer view used for contextual
// coaching notes.
func (s *Session) CombinedTranscript() string {
	return joinTurns(s.turns, func(r Role) bool { return r == RoleUser || r == RoleAssistant })
}

// Report is the final record for one completed session. Created once per
// /score trigger and immutable afterwards.
type Report struct {
	SessionID    string
	Timestamp    string // locale-formatted, mm/dd/yyyy hh:mm:ss
	EmployeeName string
	Persona      string
	Scores       scoring.Scorecard
	Total        int
	Notes        string
}

// timestampLayout matches the leaderboard sheet's locale format.
const timestampLayout = "01/02/2006 15:04:05"

// Finalize runs the scoring pass and caches the report on the session. A
// second call returns the cached report unchanged, so UI refreshes re-render
// the same result.
func (s *Session) Finalize(now time.Time) Report {
	if s.report != nil {
		return *s.report
	}
	card := scoring.ScoreAll(s.UserTranscript(), s.customerName)
	rep := Report{
		SessionID:    s.ID,
		Timestamp:    now.Format(timestampLayout),
		EmployeeName: s.EmployeeName,
		Persona:      s.Persona.Label,
		Scores:       card,
		Total:        card.Total(),
		Notes:        scoring.Notes(card, s.CombinedTranscript(), s.Persona.Label, s.customerName),
	}
	s.report = &rep
	return rep
}

// FinalReport returns the cached report, or nil before Finalize.
func (s *Session) FinalReport() *Report {
	if s.report == nil {
		return nil
	}
	rep := *s.report
	return &rep
}
