package betcup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcROI(t *testing.T) {
	assert.Equal(t, 0.0, CalcROI(0, 50), "no turnover means no ROI")
	assert.Equal(t, 50.0, CalcROI(100, 150))
	assert.Equal(t, -20.0, CalcROI(100, 80))
	assert.Equal(t, -100.0, CalcROI(100, 0))
	assert.Equal(t, 33.33, CalcROI(300, 400))
}

func TestCalcBetSummary(t *testing.T) {
	m1 := testMatch("m1", 1, "a", "b", 2, 0)
	m2 := testMatch("m2", 5, "a", "b", 2, 0)
	m3 := testMatch("m3", 6, "a", "b", 0, 0)
	fixture := testMatch("m4", 7, "a", "b", -1, -1)
	matches := []*Match{m1, m2, m3, fixture}

	bets := map[string]*MatchBet{
		// settled, but in the cutoff window
		"m1": {MatchID: "m1", WinStake: 10, WinPotentialWin: 18, DrawStake: -1, DefeatStake: -1},
		// home win: the win leg pays, the draw leg loses its stake
		"m2": {MatchID: "m2", WinStake: 10, WinPotentialWin: 18, DrawStake: 5, DrawPotentialWin: 17.5, DefeatStake: -1},
		// draw: only the draw leg was placed and it pays
		"m3": {MatchID: "m3", WinStake: -1, DrawStake: 4, DrawPotentialWin: 14, DefeatStake: -1},
		// fixtures cannot be settled
		"m4": {MatchID: "m4", WinStake: 10, WinPotentialWin: 18, DrawStake: -1, DefeatStake: -1},
	}

	s := CalcBetSummary(matches, bets, 1)
	assert.Equal(t, 1, s.CutoffRound)
	assert.Equal(t, 3, s.CountStake)
	assert.InDelta(t, 19, s.TotalBet, 1e-9)
	assert.InDelta(t, 32, s.TotalWin, 1e-9)
	assert.Equal(t, CalcROI(19, 32), s.TotalROI)
}

func TestCalcBetSummaryCutoffExcludesEverything(t *testing.T) {
	matches := []*Match{testMatch("m1", 3, "a", "b", 1, 0)}
	bets := map[string]*MatchBet{
		"m1": {MatchID: "m1", WinStake: 10, WinPotentialWin: 15, DrawStake: -1, DefeatStake: -1},
	}
	s := CalcBetSummary(matches, bets, 10)
	assert.Equal(t, 0, s.CountStake)
	assert.Equal(t, 0.0, s.TotalBet)
	assert.Equal(t, 0.0, s.TotalROI)
}

func TestCalcForecastSummaryClassification(t *testing.T) {
	matches := []*Match{
		testMatch("m1", 1, "a", "b", 2, 1), // exact hit
		testMatch("m2", 2, "a", "b", 3, 2), // difference hit
		testMatch("m3", 3, "a", "b", 4, 1), // outcome hit
		testMatch("m4", 4, "a", "b", 0, 1), // miss
	}
	f := func(id string) *Forecast {
		return &Forecast{MatchID: id, Outcome: OutcomeWin, HomeGoals: 2, AwayGoals: 1}
	}
	forecasts := map[string]*Forecast{
		"m1": f("m1"), "m2": f("m2"), "m3": f("m3"), "m4": f("m4"),
	}

	s := CalcForecastSummary(matches, forecasts)
	assert.Equal(t, 4, s.MatchCount)
	// each match lands in exactly one category
	assert.Equal(t, 1, s.ExactScore.Count)
	assert.Equal(t, 1, s.Differences.Count)
	assert.Equal(t, 1, s.Outcomes.Count)
	assert.Equal(t, 3, s.SumForecast.Count)
	assert.Equal(t, 75, s.SumForecast.Percent)

	assert.Equal(t, 4, s.Win.Count)
	assert.Equal(t, 3, s.Win.CountCorrect)
	assert.Equal(t, 75, s.Win.CorrectPercent)
	assert.Equal(t, 0, s.Draw.Count)
	assert.Equal(t, 0, s.Draw.CorrectPercent)
}

func TestCalcForecastSummaryGoalsAndTotals(t *testing.T) {
	matches := []*Match{
		testMatch("m1", 1, "a", "b", 2, 1),
		testMatch("m2", 2, "a", "b", 0, 0),
	}
	forecasts := map[string]*Forecast{
		"m1": {MatchID: "m1", Outcome: OutcomeWin, HomeGoals: 2, AwayGoals: 1},
		"m2": {MatchID: "m2", Outcome: OutcomeWin, HomeGoals: 2, AwayGoals: 1},
	}

	s := CalcForecastSummary(matches, forecasts)
	assert.Equal(t, 2, s.Goals.Scored)
	assert.Equal(t, 1, s.Goals.Conceded)
	assert.Equal(t, 3, s.Goals.Total)
	assert.Equal(t, 4, s.GoalsForecast.Scored)
	assert.Equal(t, 2, s.GoalsForecast.Conceded)

	// m1 total matched exactly, m2 real total fell under the forecast
	assert.Equal(t, 1, s.Total.Count)
	assert.Equal(t, 50, s.Total.UnderPercent)
	assert.Equal(t, 50, s.Total.EqualsPercent)
	assert.Equal(t, 0, s.Total.OverPercent)
}

func TestCalcForecastSummarySkipsUnplayed(t *testing.T) {
	matches := []*Match{
		testMatch("m1", 1, "a", "b", 1, 0),
		testMatch("m2", 2, "a", "b", -1, -1),
	}
	forecasts := map[string]*Forecast{
		"m1": {MatchID: "m1", Outcome: OutcomeWin, HomeGoals: 1, AwayGoals: 0},
		"m2": {MatchID: "m2", Outcome: OutcomeWin, HomeGoals: 1, AwayGoals: 0},
	}
	s := CalcForecastSummary(matches, forecasts)
	assert.Equal(t, 1, s.MatchCount)
}
