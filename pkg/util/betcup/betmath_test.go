package betcup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 2.5, Average(5, 2))
	assert.Equal(t, 0.33, Average(1, 3))
	assert.Equal(t, 0.13, Average(1, 8), "0.125 rounds half up")
	assert.Equal(t, 0.0, Average(10, 0), "zero count yields zero")
}

func TestAveragePercent(t *testing.T) {
	assert.Equal(t, 33, AveragePercent(1, 3))
	assert.Equal(t, 67, AveragePercent(2, 3))
	assert.Equal(t, 50, AveragePercent(1, 2))
	assert.Equal(t, 1, AveragePercent(1, 200), "0.5 rounds half up")
	assert.Equal(t, 0, AveragePercent(5, 0))
}

func TestRoundWholeAndRoundGoal(t *testing.T) {
	// probabilities round half up, goals round half down
	assert.Equal(t, 3, RoundWhole(5, 2))
	assert.Equal(t, 2, RoundGoal(5, 2))
	assert.Equal(t, 3, RoundGoal(5.2, 2))
	assert.Equal(t, 0, RoundGoal(0, 2))
	assert.Equal(t, 0, RoundWhole(7, 0))
	assert.Equal(t, 0, RoundGoal(7, 0))
}

func TestOddsToProb(t *testing.T) {
	assert.Equal(t, 50.0, OddsToProb(2.0))
	assert.Equal(t, 33.33, OddsToProb(3.0))
	assert.Equal(t, 76.92, OddsToProb(1.3))
}

func TestMargin(t *testing.T) {
	assert.Equal(t, 5.26, Margin(1.90, 1.90))
	assert.Equal(t, 8.28, Margin3(1.30, 8.03, 5.29))
	assert.Greater(t, Margin3(1.30, 8.03, 5.29), 0.0, "bookmaker keeps an overround")
}

func TestFairProb(t *testing.T) {
	assert.Equal(t, 50.0, FairProb(2.0, 2.0))
	assert.Equal(t, 50.0, FairProb3(2.0, 4.0, 4.0))
	assert.Equal(t, 25.0, FairProb3(4.0, 2.0, 4.0))
}

func TestFairProbDistributionSumsTo100(t *testing.T) {
	// margin removal yields a proper distribution, within integer
	// rounding tolerance of each leg
	odds := [3]float64{1.30, 5.29, 8.03}
	sum := FairProb3(odds[0], odds[1], odds[2]) +
		FairProb3(odds[1], odds[0], odds[2]) +
		FairProb3(odds[2], odds[0], odds[1])
	assert.InDelta(t, 100.0, sum, 1.0)
}

func TestDoubleOdds(t *testing.T) {
	assert.Equal(t, 1.33, DoubleOdds(2.0, 4.0))
	assert.Equal(t, 1.0, DoubleOdds(2.0, 2.0))
}

func TestTotalPercent(t *testing.T) {
	under, equals, over := TotalPercent(1, 1, 1)
	assert.Equal(t, 33, under)
	assert.Equal(t, 33, equals)
	assert.Equal(t, 33, over)

	under, equals, over = TotalPercent(0, 0, 0)
	assert.Equal(t, 0, under+equals+over)
}
