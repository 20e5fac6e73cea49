package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grivetoutdoors/salestrainer/internal/session"
)

func rep(name string, total int, ts string) session.Report {
	return session.Report{EmployeeName: name, Total: total, Timestamp: ts}
}

func TestRankOrdersByScoreDesc(t *testing.T) {
	ranked := Rank([]session.Report{
		rep("low", 40, "01/01/2026 10:00:00"),
		rep("high", 90, "01/01/2026 10:00:00"),
		rep("mid", 65, "01/01/2026 10:00:00"),
	})

	require.Equal(t, []string{"high", "mid", "low"},
		[]string{ranked[0].EmployeeName, ranked[1].EmployeeName, ranked[2].EmployeeName})
}

func TestRankBreaksTiesByRecency(t *testing.T) {
	ranked := Rank([]session.Report{
		rep("older", 70, "01/01/2026 09:00:00"),
		rep("newer", 70, "02/15/2026 09:00:00"),
	})

	require.Equal(t, "newer", ranked[0].EmployeeName)
	require.Equal(t, "older", ranked[1].EmployeeName)
}

func TestRankUnparseableTimestampsSortLast(t *testing.T) {
	ranked := Rank([]session.Report{
		rep("garbage", 70, "not a timestamp"),
		rep("dated", 70, "01/01/2026 09:00:00"),
	})

	require.Equal(t, "dated", ranked[0].EmployeeName)
	require.Equal(t, "garbage", ranked[1].EmployeeName)
}

func TestRankDoesNotModifyInput(t *testing.T) {
	in := []session.Report{
		rep("low", 40, "01/01/2026 10:00:00"),
		rep("high", 90, "01/01/2026 10:00:00"),
	}
	Rank(in)
	require.Equal(t, "low", in[0].EmployeeName)
}

func TestRankEmpty(t *testing.T) {
	require.Empty(t, Rank(nil))
}

func TestDynamoItemRoundTrip(t *testing.T) {
	original := testReport()
	got := fromItem(toItem(original))
	require.Equal(t, original, got)

	item := toItem(original)
	require.Equal(t, "REPORT#"+original.SessionID, item.PK)
	require.Equal(t, "METADATA", item.SK)
	require.Equal(t, "REPORTS", item.GSI1PK)
	require.Equal(t, original.Timestamp+"#"+original.SessionID, item.GSI1SK)
}
