package store

import (
	"sort"
	"time"

	"github.com/grivetoutdoors/salestrainer/internal/session"
)

const timestampLayout = "01/02/2006 15:04:05"

// Rank orders reports for leaderboard display: descending by total score,
// ties broken by most recent timestamp. The input slice is not modified.
func Rank(reports []session.Report) []session.Report {
	ranked := make([]session.Report, len(reports))
	copy(ranked, reports)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		ti, iOK := parseTimestamp(ranked[i].Timestamp)
		tj, jOK := parseTimestamp(ranked[j].Timestamp)
		if iOK && jOK {
			return ti.After(tj)
		}
		// Unparseable timestamps sort after parseable ones.
		return iOK
	})
	return ranked
}

func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
