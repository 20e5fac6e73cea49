package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/grivetoutdoors/salestrainer/internal/scoring"
	"github.com/grivetoutdoors/salestrainer/internal/session"
)

const defaultAppSheetBase = "https://api.appsheet.com/api/v2"

// AppSheet talks to the AppSheet table Action API. The table is treated as an
// opaque row store: Add appends a report row, Find returns every row.
type AppSheet struct {
	baseURL    string
	appID      string
	accessKey  string
	table      string
	httpClient *http.Client
}

// NewAppSheet builds a client for one AppSheet app/table.
func NewAppSheet(appID, accessKey, table string) *AppSheet {
	return &AppSheet{
		baseURL:    defaultAppSheetBase,
		appID:      appID,
		accessKey:  accessKey,
		table:      table,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// actionRequest is the AppSheet Action API envelope.
type actionRequest struct {
	Action     string           `json:"Action"`
	Properties actionProperties `json:"Properties"`
	Rows       []map[string]any `json:"Rows"`
}

type actionProperties struct {
	Locale   string `json:"Locale"`
	Timezone string `json:"Timezone"`
}

func defaultProperties() actionProperties {
	return actionProperties{Locale: "en-US", Timezone: "Central Standard Time"}
}

// AddReport appends one report row.
func (a *AppSheet) AddReport(ctx context.Context, rep session.Report) error {
	req := actionRequest{
		Action:     "Add",
		Properties: defaultProperties(),
		Rows:       []map[string]any{reportToRow(rep)},
	}
	_, err := a.do(ctx, req)
	return err
}

// ListReports fetches every persisted row via a Find action. Ranking is a
// display concern and happens in Rank, not at the query layer.
func (a *AppSheet) ListReports(ctx context.Context) ([]session.Report, error) {
	req := actionRequest{
		Action:     "Find",
		Properties: defaultProperties(),
		Rows:       []map[string]any{},
	}
	body, err := a.do(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseRows(body)
}

func (a *AppSheet) do(ctx context.Context, req actionRequest) ([]byte, error) {
	ctx, span := otel.Tracer("store").Start(ctx, "appsheet."+req.Action)
	defer span.End()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", req.Action, err)
	}

	url := fmt.Sprintf("%s/apps/%s/tables/%s/Action", a.baseURL, a.appID, a.table)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", req.Action, err)
	}
	httpReq.Header.Set("ApplicationAccessKey", a.accessKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("appsheet %s: %w", req.Action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read appsheet response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("appsheet %s: status %d: %s", req.Action, resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

func reportToRow(rep session.Report) map[string]any {
	row := map[string]any{
		"Session ID":    rep.SessionID,
		"Timestamp":     rep.Timestamp,
		"Employee Name": rep.EmployeeName,
		"Persona":       rep.Persona,
		"Total Score":   rep.Total,
		"Notes":         rep.Notes,
	}
	for _, p := range scoring.Pillars {
		row[string(p)] = rep.Scores[p]
	}
	return row
}

// parseRows decodes a Find response. AppSheet returns either a bare JSON
// array of rows or an object with a "Rows" array; both shapes are accepted
// and each row is validated with defaulting at this boundary (missing scores
// become 0, missing strings become "").
func parseRows(body []byte) ([]session.Report, error) {
	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		var wrapped struct {
			Rows []map[string]any `json:"Rows"`
		}
		if err2 := json.Unmarshal(body, &wrapped); err2 != nil {
			return nil, fmt.Errorf("parse appsheet rows: %w", err)
		}
		rows = wrapped.Rows
	}

	reports := make([]session.Report, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, rowToReport(row))
	}
	return reports, nil
}

func rowToReport(row map[string]any) session.Report {
	rep := session.Report{
		SessionID:    rowString(row, "Session ID"),
		Timestamp:    rowString(row, "Timestamp"),
		EmployeeName: rowString(row, "Employee Name"),
		Persona:      rowString(row, "Persona"),
		Notes:        rowString(row, "Notes"),
		Total:        rowInt(row, "Total Score"),
		Scores:       make(scoring.Scorecard, len(scoring.Pillars)),
	}
	for _, p := range scoring.Pillars {
		rep.Scores[p] = rowInt(row, string(p))
	}
	return rep
}

func rowString(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

// rowInt coerces the number-ish shapes AppSheet emits: JSON numbers and
// numeric strings.
func rowInt(row map[string]any, key string) int {
	switch v := row[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
