package persona

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	require.Len(t, Catalog, 13)

	seen := make(map[string]bool, len(Catalog))
	for _, p := range Catalog {
		require.NotEmpty(t, p.Label)
		require.NotEmpty(t, p.Profile)
		require.NotEmpty(t, p.ShoppingCue)
		require.NotEmpty(t, p.Demeanor)
		require.False(t, seen[p.Label], "duplicate label %q", p.Label)
		seen[p.Label] = true
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		ok    bool
	}{
		{"exact label", "Walker", "Walker", true},
		{"substring", "marathon", "Intense Marathon Runner", true},
		{"case insensitive", "YOGA", "Yoga Mom", true},
		{"padded", "  triathlete  ", "Triathlete", true},
		{"unknown", "astronaut", "", false},
		{"blank", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Find(tt.query)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, p.Label)
		})
	}
}

func TestRandomStaysInCatalog(t *testing.T) {
	labels := make(map[string]bool, len(Catalog))
	for _, p := range Catalog {
		labels[p.Label] = true
	}
	for i := 0; i < 50; i++ {
		require.True(t, labels[Random().Label])
	}
}
