package betcup

import (
	"github.com/shopspring/decimal"
)

// CalcROI computes the return on investment percentage for a betting run,
// rounded to two decimal places. A run with no turnover returns 0
func CalcROI(totalBet, totalWin float64) float64 {
	if totalBet == 0 {
		return 0
	}
	profit := decimal.NewFromFloat(totalWin).Sub(decimal.NewFromFloat(totalBet))
	roi := profit.Div(decimal.NewFromFloat(totalBet)).Mul(hundred)
	f, _ := roundHalfUp(roi, 2).Float64()
	return f
}

// BetSummary aggregates the outcome of every bet placed after the cutoff
// round
type BetSummary struct {
	// CutoffRound is the last round whose matches fed the model only.
	// Bets on rounds at or before it are excluded from the tally
	CutoffRound int     `json:"cutoffRound"`
	TotalBet    float64 `json:"totalBet"`
	TotalWin    float64 `json:"totalWin"`
	TotalROI    float64 `json:"totalRoi"`
	CountStake  int     `json:"countStake"`
}

// CalcBetSummary settles every sized leg against the final scores. Only
// matches with a result and a round number beyond the cutoff take part.
// Every leg with a positive stake adds to the turnover, winning legs add
// their potential win to the returns
func CalcBetSummary(matches []*Match, bets map[string]*MatchBet, cutoffRound int) *BetSummary {
	s := &BetSummary{CutoffRound: cutoffRound}
	for _, m := range matches {
		if !m.HasResult() || !m.HasRound() || m.RoundNumber <= cutoffRound {
			continue
		}
		b, ok := bets[m.ID]
		if !ok {
			continue
		}
		outcome := m.Outcome()
		for _, leg := range b.legs() {
			if leg.Stake <= 0 {
				continue
			}
			s.TotalBet += leg.Stake
			s.CountStake++
			if leg.Outcome == outcome {
				s.TotalWin += leg.PotentialWin
			}
		}
	}
	s.TotalROI = CalcROI(s.TotalBet, s.TotalWin)
	return s
}

/////////////////////////////////////////////////////////////////////////
////// Forecast accuracy
/////////////////////////////////////////////////////////////////////////

// CountPercent pairs a raw count with its percentage of the matches seen
type CountPercent struct {
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// GoalTotals sums up goals from the home side's point of view
type GoalTotals struct {
	Scored     int `json:"goalsScored"`
	Conceded   int `json:"goalsConceded"`
	Difference int `json:"goalDifference"`
	Total      int `json:"goalTotal"`
}

// OutcomeAccuracy records how often a predicted outcome class came true
type OutcomeAccuracy struct {
	Count          int `json:"count"`
	CountCorrect   int `json:"countCorrect"`
	CorrectPercent int `json:"correctPercent"`
}

// TotalAccuracy records how predicted goal totals compared with reality.
// Count holds the exact hits, Under/Over the percentage of predictions that
// fell short of or exceeded the real total
type TotalAccuracy struct {
	Count         int `json:"count"`
	UnderPercent  int `json:"underPercent"`
	EqualsPercent int `json:"equalsPercent"`
	OverPercent   int `json:"overPercent"`
}

// ForecastSummary is the accuracy report for one forecasting run over all
// played matches
type ForecastSummary struct {
	MatchCount int `json:"matchCount"`

	Goals         GoalTotals `json:"goals"`
	GoalsForecast GoalTotals `json:"goalsForecast"`

	// Each played match lands in exactly one of these three, checked in
	// order of strictness
	ExactScore  CountPercent `json:"exactScore"`
	Differences CountPercent `json:"differences"`
	Outcomes    CountPercent `json:"outcomes"`
	SumForecast CountPercent `json:"sumForecast"`

	Win    OutcomeAccuracy `json:"win"`
	Draw   OutcomeAccuracy `json:"draw"`
	Defeat OutcomeAccuracy `json:"defeat"`

	Total     TotalAccuracy `json:"total"`
	TotalHome TotalAccuracy `json:"totalHome"`
	TotalAway TotalAccuracy `json:"totalAway"`
}

// CalcForecastSummary grades the forecasts of every played match. The hit
// categories are mutually exclusive: an exact score is not also counted as
// a correct goal difference, and a correct difference not also as a correct
// outcome
func CalcForecastSummary(matches []*Match, forecasts map[string]*Forecast) *ForecastSummary {
	s := &ForecastSummary{}
	var totalUnder, totalOver int
	var homeUnder, homeOver int
	var awayUnder, awayOver int

	for _, m := range matches {
		if !m.HasResult() {
			continue
		}
		f, ok := forecasts[m.ID]
		if !ok {
			continue
		}

		s.MatchCount++
		s.Goals.Scored += m.HomeScore
		s.Goals.Conceded += m.AwayScore
		s.GoalsForecast.Scored += f.HomeGoals
		s.GoalsForecast.Conceded += f.AwayGoals

		// Strictest hit wins, each match counts once
		switch {
		case f.ExactScoreCorrect(m):
			s.ExactScore.Count++
		case f.GoalDiffCorrect(m):
			s.Differences.Count++
		case f.OutcomeCorrect(m):
			s.Outcomes.Count++
		}

		realTotal := m.HomeScore + m.AwayScore
		switch {
		case realTotal == f.TotalGoals():
			s.Total.Count++
		case realTotal < f.TotalGoals():
			totalUnder++
		default:
			totalOver++
		}

		switch {
		case m.HomeScore == f.HomeGoals:
			s.TotalHome.Count++
		case m.HomeScore < f.HomeGoals:
			homeUnder++
		default:
			homeOver++
		}

		switch {
		case m.AwayScore == f.AwayGoals:
			s.TotalAway.Count++
		case m.AwayScore < f.AwayGoals:
			awayUnder++
		default:
			awayOver++
		}

		switch f.Outcome {
		case OutcomeWin:
			s.Win.Count++
			if m.Outcome() == OutcomeWin {
				s.Win.CountCorrect++
			}
		case OutcomeDraw:
			s.Draw.Count++
			if m.Outcome() == OutcomeDraw {
				s.Draw.CountCorrect++
			}
		default:
			s.Defeat.Count++
			if m.Outcome() == OutcomeDefeat {
				s.Defeat.CountCorrect++
			}
		}
	}

	s.Goals.Difference = s.Goals.Scored - s.Goals.Conceded
	s.Goals.Total = s.Goals.Scored + s.Goals.Conceded
	s.GoalsForecast.Difference = s.GoalsForecast.Scored - s.GoalsForecast.Conceded
	s.GoalsForecast.Total = s.GoalsForecast.Scored + s.GoalsForecast.Conceded

	s.ExactScore.Percent = AveragePercent(float64(s.ExactScore.Count), s.MatchCount)
	s.Differences.Percent = AveragePercent(float64(s.Differences.Count), s.MatchCount)
	s.Outcomes.Percent = AveragePercent(float64(s.Outcomes.Count), s.MatchCount)
	s.SumForecast.Count = s.ExactScore.Count + s.Differences.Count + s.Outcomes.Count
	s.SumForecast.Percent = AveragePercent(float64(s.SumForecast.Count), s.MatchCount)

	s.Win.CorrectPercent = AveragePercent(float64(s.Win.CountCorrect), s.Win.Count)
	s.Draw.CorrectPercent = AveragePercent(float64(s.Draw.CountCorrect), s.Draw.Count)
	s.Defeat.CorrectPercent = AveragePercent(float64(s.Defeat.CountCorrect), s.Defeat.Count)

	s.Total.UnderPercent, s.Total.EqualsPercent, s.Total.OverPercent =
		TotalPercent(totalUnder, s.Total.Count, totalOver)
	s.TotalHome.UnderPercent, s.TotalHome.EqualsPercent, s.TotalHome.OverPercent =
		TotalPercent(homeUnder, s.TotalHome.Count, homeOver)
	s.TotalAway.UnderPercent, s.TotalAway.EqualsPercent, s.TotalAway.OverPercent =
		TotalPercent(awayUnder, s.TotalAway.Count, awayOver)

	return s
}
