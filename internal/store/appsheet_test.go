package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grivetoutdoors/salestrainer/internal/scoring"
	"github.com/grivetoutdoors/salestrainer/internal/session"
)

func testReport() session.Report {
	return session.Report{
		SessionID:    "01JTESTULID00000000000000",
		Timestamp:    "07/04/2026 15:04:05",
		EmployeeName: "Taylor",
		Persona:      "Walker",
		Scores: scoring.Scorecard{
			scoring.Introduction: 7, scoring.Impression: 5, scoring.Discovery: 9,
			scoring.Solution: 4, scoring.Upselling: 6, scoring.FullSolution: 3,
			scoring.Objections: 5, scoring.Closing: 8, scoring.Email: 7, scoring.Exit: 6,
		},
		Total: 60,
		Notes: "Great job on digging into what the customer really needs!",
	}
}

func newTestAppSheet(t *testing.T, handler http.HandlerFunc) *AppSheet {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewAppSheet("app-123", "secret-key", "Grivet Retail Sales Trainer Data")
	a.baseURL = srv.URL
	return a
}

func TestAppSheetAddReport(t *testing.T) {
	var captured actionRequest
	var gotPath, gotKey string

	a := newTestAppSheet(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("ApplicationAccessKey")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, a.AddReport(context.Background(), testReport()))

	require.Equal(t, "/apps/app-123/tables/Grivet Retail Sales Trainer Data/Action", gotPath)
	require.Equal(t, "secret-key", gotKey)
	require.Equal(t, "Add", captured.Action)
	require.Equal(t, "en-US", captured.Properties.Locale)
	require.Len(t, captured.Rows, 1)

	row := captured.Rows[0]
	require.Equal(t, "Taylor", row["Employee Name"])
	require.Equal(t, "Walker", row["Persona"])
	require.Equal(t, float64(60), row["Total Score"])
	require.Equal(t, float64(9), row["Discovery"])
	require.Equal(t, float64(8), row["Closing"])
}

func TestAppSheetListReportsBareArray(t *testing.T) {
	a := newTestAppSheet(t, func(w http.ResponseWriter, r *http.Request) {
		var req actionRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, "Find", req.Action)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"Session ID":"s1","Timestamp":"07/04/2026 15:04:05","Employee Name":"Taylor","Persona":"Walker","Total Score":60,"Discovery":9},
			{"Session ID":"s2","Employee Name":"Jordan","Total Score":"72","Closing":"8"}
		]`)
	})

	reports, err := a.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	require.Equal(t, "Taylor", reports[0].EmployeeName)
	require.Equal(t, 60, reports[0].Total)
	require.Equal(t, 9, reports[0].Scores[scoring.Discovery])

	// Numeric strings coerce, missing fields default.
	require.Equal(t, 72, reports[1].Total)
	require.Equal(t, 8, reports[1].Scores[scoring.Closing])
	require.Equal(t, 0, reports[1].Scores[scoring.Discovery])
	require.Equal(t, "", reports[1].Persona)
	require.Equal(t, "", reports[1].Timestamp)
}

func TestAppSheetListReportsWrappedRows(t *testing.T) {
	a := newTestAppSheet(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"Rows":[{"Session ID":"s1","Employee Name":"Taylor","Total Score":55}]}`)
	})

	reports, err := a.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, 55, reports[0].Total)
}

func TestAppSheetNonOKStatus(t *testing.T) {
	a := newTestAppSheet(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusForbidden)
	})

	err := a.AddReport(context.Background(), testReport())
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")

	_, err = a.ListReports(context.Background())
	require.Error(t, err)
}

func TestAppSheetMalformedResponse(t *testing.T) {
	a := newTestAppSheet(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json`)
	})

	_, err := a.ListReports(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse appsheet rows")
}
