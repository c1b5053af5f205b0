package betcup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a small synthetic season between four teams with odds on every match
func syntheticSeason() []*Match {
	scores := [][2]int{
		{2, 0}, {1, 1}, {0, 1}, {3, 1}, {2, 2}, {1, 0},
		{0, 0}, {2, 1}, {1, 3}, {4, 0}, {1, 2}, {2, 2},
	}
	teams := []string{"a", "b", "c", "d"}
	matches := make([]*Match, 0, len(scores))
	for i, s := range scores {
		home := teams[i%4]
		away := teams[(i+1)%4]
		m := testMatch("m"+string(rune('a'+i)), i+1, home, away, s[0], s[1])
		m.OddsHome, m.OddsDraw, m.OddsAway = 2.1, 3.3, 3.5
		matches = append(matches, m)
	}
	return matches
}

func TestAnalyseMatches(t *testing.T) {
	matches := syntheticSeason()
	a := AnalyseMatches(11202, matches)

	require.NotNil(t, a)
	assert.Len(t, a.Ratings, len(matches))
	assert.Len(t, a.Forecasts, len(matches))
	assert.Len(t, a.Bets, len(matches))
	assert.Len(t, a.BetSummaries, Config.BacktestRounds)

	require.NotNil(t, a.ForecastSummary)
	assert.Equal(t, len(matches), a.ForecastSummary.MatchCount)

	// every match got a forecast with a picked outcome
	for id, f := range a.Forecasts {
		assert.Contains(t, []string{OutcomeWin, OutcomeDraw, OutcomeDefeat}, f.Outcome, id)
	}

	// cutoff sweep: later cutoffs settle fewer bets
	first := a.BetSummaries[0]
	last := a.BetSummaries[len(a.BetSummaries)-1]
	assert.GreaterOrEqual(t, first.CountStake, last.CountStake)
	assert.Equal(t, 0, last.CountStake, "no rounds remain beyond the last cutoff")
}

func TestAnalyseMatchesRatingHistoryIsChronological(t *testing.T) {
	matches := syntheticSeason()
	a := AnalyseMatches(11202, matches)

	seen := make(map[string]int)
	for _, r := range a.Ratings {
		// old rating must match the newest rating each team left a
		// previous match with
		if v, ok := seen[r.HomeTeamID]; ok {
			assert.Equal(t, v, r.HomeOldRating)
		} else {
			assert.Equal(t, 0, r.HomeOldRating)
		}
		if v, ok := seen[r.AwayTeamID]; ok {
			assert.Equal(t, v, r.AwayOldRating)
		} else {
			assert.Equal(t, 0, r.AwayOldRating)
		}
		seen[r.HomeTeamID] = r.HomeNewRating
		seen[r.AwayTeamID] = r.AwayNewRating
	}
}

func TestAnalyseMatchesRatingProbabilitiesSumTo100(t *testing.T) {
	matches := syntheticSeason()
	a := AnalyseMatches(11202, matches)

	for _, r := range a.Ratings {
		assert.Equal(t, 100, r.WinProb+r.DrawProb+r.DefeatProb, r.MatchID)

		// the triple is derived from the pre-match ratings
		win, draw, defeat := MatchProbabilities(r.HomeOldRating, r.AwayOldRating)
		assert.Equal(t, win, r.WinProb, r.MatchID)
		assert.Equal(t, draw, r.DrawProb, r.MatchID)
		assert.Equal(t, defeat, r.DefeatProb, r.MatchID)
	}
}

func TestBestCutoff(t *testing.T) {
	a := &ChampionshipAnalysis{
		BetSummaries: []*BetSummary{
			{CutoffRound: 1, CountStake: 10, TotalROI: -5},
			{CutoffRound: 2, CountStake: 8, TotalROI: 12.5},
			{CutoffRound: 3, CountStake: 0, TotalROI: 0},
		},
	}
	best := a.BestCutoff()
	require.NotNil(t, best)
	assert.Equal(t, 2, best.CutoffRound)

	empty := &ChampionshipAnalysis{}
	assert.Nil(t, empty.BestCutoff())
}
