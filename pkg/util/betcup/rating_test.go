package betcup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinProbabilityPair(t *testing.T) {
	home, away := WinProbabilityPair(0, 0)
	assert.Equal(t, 50, home)
	assert.Equal(t, 50, away)

	home, away = WinProbabilityPair(200, 0)
	assert.Equal(t, 60, home)
	assert.Equal(t, 40, away)

	// halves round half up
	home, away = WinProbabilityPair(10, 0)
	assert.Equal(t, 51, home)
	assert.Equal(t, 49, away)

	// huge gaps clamp, the weaker side keeps 5 percent
	home, away = WinProbabilityPair(2000, 0)
	assert.Equal(t, 95, home)
	assert.Equal(t, 5, away)

	home, away = WinProbabilityPair(0, 2000)
	assert.Equal(t, 5, home)
	assert.Equal(t, 95, away)
}

func TestWinProbabilityPairSumsTo100(t *testing.T) {
	for _, gap := range []int{-3000, -217, -10, 0, 7, 123, 999, 5000} {
		home, away := WinProbabilityPair(gap, 0)
		assert.Equal(t, 100, home+away)
	}
}

func TestCurrentRating(t *testing.T) {
	history := []*MatchRating{
		{MatchID: "m1", HomeTeamID: "a", AwayTeamID: "b", HomeNewRating: 45, AwayNewRating: -45},
		{MatchID: "m2", HomeTeamID: "b", AwayTeamID: "c", HomeNewRating: -40, AwayNewRating: 40},
	}
	assert.Equal(t, 45, CurrentRating(history, "a"))
	assert.Equal(t, -40, CurrentRating(history, "b"), "latest appearance wins")
	assert.Equal(t, 40, CurrentRating(history, "c"))
	assert.Equal(t, 0, CurrentRating(history, "d"), "unknown teams start at 0")
}

func TestCalcRatingFixtureLeavesRatingsUnchanged(t *testing.T) {
	m := testMatch("m1", 1, "a", "b", -1, -1)
	r := CalcRating(nil, m)
	assert.Equal(t, 0, r.HomeNewRating)
	assert.Equal(t, 0, r.AwayNewRating)
	assert.Equal(t, 50, r.HomeWinProb)
}

func TestCalcRatingHomeWin(t *testing.T) {
	m := testMatch("m1", 1, "a", "b", 2, 0)
	r := CalcRating(nil, m)
	// +50 for the win, +6 for the two goal margin, -5 home advantage
	assert.Equal(t, 51, r.HomeNewRating)
	assert.Equal(t, -51, r.AwayNewRating)
}

func TestCalcRatingDraw(t *testing.T) {
	m := testMatch("m1", 1, "a", "b", 1, 1)
	r := CalcRating(nil, m)
	// equal ratings, goal difference zero: only the home shift applies
	assert.Equal(t, -5, r.HomeNewRating)
	assert.Equal(t, 5, r.AwayNewRating)
}

func TestCalcRatingAwayWin(t *testing.T) {
	m := testMatch("m1", 1, "a", "b", 0, 1)
	r := CalcRating(nil, m)
	assert.Equal(t, -58, r.HomeNewRating)
	assert.Equal(t, 58, r.AwayNewRating)
}

func TestCalcRatingCarriesThreeWayProbabilities(t *testing.T) {
	m := testMatch("m1", 1, "a", "b", 2, 0)
	r := CalcRating(nil, m)
	assert.Equal(t, 43, r.WinProb)
	assert.Equal(t, 25, r.DrawProb)
	assert.Equal(t, 32, r.DefeatProb)
}

func TestCalcRatingZeroSum(t *testing.T) {
	matches := []*Match{
		testMatch("m1", 1, "a", "b", 2, 0),
		testMatch("m2", 2, "b", "a", 1, 1),
		testMatch("m3", 3, "a", "b", 0, 3),
	}
	history := ComputeRatings(matches)
	for _, r := range history {
		gained := (r.HomeNewRating - r.HomeOldRating) + (r.AwayNewRating - r.AwayOldRating)
		assert.Equal(t, 0, gained, "rating points only move between the two teams")
	}
}

func TestMatchProbabilities(t *testing.T) {
	win, draw, defeat := MatchProbabilities(0, 0)
	assert.Equal(t, 43, win)
	assert.Equal(t, 25, draw)
	assert.Equal(t, 32, defeat)
	assert.Equal(t, 100, win+draw+defeat)
}

func TestMatchProbabilitiesExtremeGap(t *testing.T) {
	// the home shift would push the defeat below zero, the drift lands on
	// the win side
	win, draw, defeat := MatchProbabilities(2000, 0)
	assert.Equal(t, 75, win)
	assert.Equal(t, 25, draw)
	assert.Equal(t, 0, defeat)
	assert.Equal(t, 100, win+draw+defeat)
}

func TestMatchProbabilitiesAlwaysSumTo100(t *testing.T) {
	for _, gap := range []int{-5000, -900, -100, -20, 0, 20, 100, 900, 5000} {
		win, draw, defeat := MatchProbabilities(gap, 0)
		assert.Equal(t, 100, win+draw+defeat, "gap %d", gap)
		assert.GreaterOrEqual(t, win, 0)
		assert.GreaterOrEqual(t, defeat, 0)
	}
}
