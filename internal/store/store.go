// Package store persists finished session reports to an external tabular
// backend and reads them back for the leaderboard. Persistence is strictly
// best-effort from the session's point of view: a failed write is surfaced as
// a warning and never invalidates the report already computed and displayed.
package store

import (
	"context"

	"github.com/grivetoutdoors/salestrainer/internal/session"
)

// Store is the opaque tabular collaborator: one Add-row operation and one
// Find-rows operation.
type Store interface {
	AddReport(ctx context.Context, rep session.Report) error
	ListReports(ctx context.Context) ([]session.Report, error)
}

// Nop is the offline store: writes vanish, reads come back empty.
type Nop struct{}

func (Nop) AddReport(context.Context, session.Report) error { return nil }

func (Nop) ListReports(context.Context) ([]session.Report, error) { return nil, nil }
