package betcup

import (
	"github.com/shopspring/decimal"
)

// All intermediate division and rounding runs on fixed-point decimals so that
// repeated averaging does not accumulate binary floating point drift. Only the
// final externally visible value is converted back to float64.

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// roundHalfUp quantizes d to the given number of decimal places, with 0.5
// rounding away from zero
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// roundHalfDown quantizes d to the given number of decimal places, with 0.5
// rounding to the lower value
func roundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	shifted := d.Shift(places)
	floor := shifted.Floor()
	frac := shifted.Sub(floor)
	half := decimal.NewFromFloat(0.5)
	if frac.GreaterThan(half) {
		floor = floor.Add(one)
	}
	return floor.Shift(-places)
}

// Average divides sum by count rounded to two decimal places, half up
// Returns 0 when count is 0
func Average(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	d := decimal.NewFromFloat(sum).Div(decimal.NewFromInt(int64(count)))
	f, _ := roundHalfUp(d, 2).Float64()
	return f
}

// AveragePercent returns 100*sum/count rounded to the nearest integer, half up
// Returns 0 when count is 0
func AveragePercent(sum float64, count int) int {
	if count == 0 {
		return 0
	}
	d := hundred.Mul(decimal.NewFromFloat(sum)).Div(decimal.NewFromInt(int64(count)))
	return int(roundHalfUp(d, 0).IntPart())
}

// RoundWhole divides sum by count and rounds to the nearest integer, half up
// Used for probability figures
func RoundWhole(sum float64, count int) int {
	if count == 0 {
		return 0
	}
	d := decimal.NewFromFloat(sum).Div(decimal.NewFromInt(int64(count)))
	return int(roundHalfUp(d, 0).IntPart())
}

// RoundGoal divides sum by count and rounds to the nearest integer with 0.5
// rounding DOWN. Goal forecasts use this rule because rounding half up would
// systematically inflate scorelines
func RoundGoal(sum float64, count int) int {
	if count == 0 {
		return 0
	}
	d := decimal.NewFromFloat(sum).Div(decimal.NewFromInt(int64(count)))
	return int(roundHalfDown(d, 0).IntPart())
}

// OddsToProb converts a decimal bookmaker odds value into the implied
// probability percentage (including the bookmaker's margin)
func OddsToProb(odds float64) float64 {
	d := hundred.Div(decimal.NewFromFloat(odds))
	f, _ := roundHalfUp(d, 2).Float64()
	return f
}

// Margin computes the bookmaker overround across two outcomes
func Margin(odds1, odds2 float64) float64 {
	d := hundred.Div(decimal.NewFromFloat(odds1)).
		Add(hundred.Div(decimal.NewFromFloat(odds2))).
		Sub(hundred)
	f, _ := roundHalfUp(d, 2).Float64()
	return f
}

// Margin3 computes the bookmaker overround across three outcomes
// (home/draw/away)
func Margin3(odds1, odds2, oddsX float64) float64 {
	d := hundred.Div(decimal.NewFromFloat(odds1)).
		Add(hundred.Div(decimal.NewFromFloat(odds2))).
		Add(hundred.Div(decimal.NewFromFloat(oddsX))).
		Sub(hundred)
	f, _ := roundHalfUp(d, 2).Float64()
	return f
}

// FairProb normalizes the implied probability of odds against a second
// outcome, removing the bookmaker's margin
func FairProb(odds, odds1 float64) float64 {
	probOdds := hundred.Div(decimal.NewFromFloat(odds))
	probOdds1 := hundred.Div(decimal.NewFromFloat(odds1))
	total := probOdds.Add(probOdds1)
	f, _ := roundHalfUp(probOdds.Div(total).Mul(hundred), 2).Float64()
	return f
}

// FairProb3 normalizes the implied probability of odds against two other
// outcomes, removing the bookmaker's margin. The three fair probabilities of
// a 1X2 market sum to 100 within integer rounding tolerance
func FairProb3(odds, odds1, odds2 float64) float64 {
	probOdds := hundred.Div(decimal.NewFromFloat(odds))
	probOdds1 := hundred.Div(decimal.NewFromFloat(odds1))
	probOdds2 := hundred.Div(decimal.NewFromFloat(odds2))
	total := probOdds.Add(probOdds1).Add(probOdds2)
	f, _ := roundHalfUp(probOdds.Div(total).Mul(hundred), 2).Float64()
	return f
}

// DoubleOdds computes the combined payout odds of a double chance bet
// covering either of two outcomes (for example 1X)
func DoubleOdds(odds1, odds2 float64) float64 {
	d := hundred.Div(hundred.Div(decimal.NewFromFloat(odds1)).
		Add(hundred.Div(decimal.NewFromFloat(odds2))))
	f, _ := roundHalfUp(d, 2).Float64()
	return f
}

// TotalPercent computes the percentage split of under/equals/over counts
// All three percentages are 0 when no cases were observed
func TotalPercent(under, equals, over int) (underPercent, equalsPercent, overPercent int) {
	count := under + equals + over
	if count == 0 {
		return 0, 0, 0
	}
	return AveragePercent(float64(under), count),
		AveragePercent(float64(equals), count),
		AveragePercent(float64(over), count)
}
