package betcup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDatabase points the shared connection at a throwaway file and
// restores the previous state when the test finishes
func openTestDatabase(t *testing.T) {
	t.Helper()
	prev := Config.DbPath
	require.NoError(t, CloseDatabase())
	Config.DbPath = filepath.Join(t.TempDir(), "betcup.db")
	require.NoError(t, InitDatabase())
	t.Cleanup(func() {
		CloseDatabase()
		Config.DbPath = prev
	})
}

func TestMatchRoundTrip(t *testing.T) {
	openTestDatabase(t)

	m := testMatch("rt1", 3, "a", "b", 2, 1)
	m.OddsHome, m.OddsDraw, m.OddsAway = 1.85, 3.4, 4.2
	require.NoError(t, Save(m))

	found, err := Exists(m)
	require.NoError(t, err)
	assert.True(t, found)

	loaded := NewMatch()
	require.NoError(t, FindByPrimaryKey(loaded, map[string]any{"id": "rt1"}))
	assert.Equal(t, "a", loaded.HomeTeamID)
	assert.Equal(t, 2, loaded.HomeScore)
	assert.Equal(t, 1, loaded.AwayScore)
	assert.Equal(t, 1.85, loaded.OddsHome)
	assert.Equal(t, 3, loaded.RoundNumber)

	// a second Save of the same key takes the update path
	m.HomeScore = 3
	require.NoError(t, Save(m))
	reloaded := NewMatch()
	require.NoError(t, FindByPrimaryKey(reloaded, map[string]any{"id": "rt1"}))
	assert.Equal(t, 3, reloaded.HomeScore)

	all, err := FindAll(&Match{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, Delete(m))
	found, err = Exists(m)
	require.NoError(t, err)
	assert.False(t, found)

	err = FindByPrimaryKey(NewMatch(), map[string]any{"id": "rt1"})
	assert.Error(t, err)
}

func TestRatingRowRoundTrip(t *testing.T) {
	openTestDatabase(t)

	matches := []*Match{
		testMatch("m1", 1, "a", "b", 2, 0),
		testMatch("m2", 2, "b", "a", 1, 1),
	}
	history := ComputeRatings(matches)
	objs := make([]Persistable, len(history))
	for i, r := range history {
		objs[i] = r
	}
	require.NoError(t, BulkSave(objs))

	loaded, err := FindWhere(&MatchRating{}, "championshipId = ?", 11202)
	require.NoError(t, err)
	require.Len(t, loaded, len(history))
	for _, obj := range loaded {
		r := obj.(*MatchRating)
		assert.Equal(t, 100, r.HomeWinProb+r.AwayWinProb, r.MatchID)
		assert.Equal(t, 100, r.WinProb+r.DrawProb+r.DefeatProb, r.MatchID)
	}
}
