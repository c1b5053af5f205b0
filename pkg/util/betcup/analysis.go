package betcup

import (
	"fmt"

	"github.com/easmith/betcup/internal/logger"
)

// ChampionshipAnalysis is the complete result of one analysis run over a
// championship: the prematch figures, the rating history, a forecast and
// sized bet for every match, the accuracy report and the backtest sweep
type ChampionshipAnalysis struct {
	ChampionshipID  int
	Matches         []*Match
	Statistics      map[string]*MatchStatistics
	Ratings         []*MatchRating
	Forecasts       map[string]*Forecast
	Bets            map[string]*MatchBet
	ForecastSummary *ForecastSummary
	BetSummaries    []*BetSummary
}

// LoadMatches reads all matches of a championship from the database in
// chronological order
func LoadMatches(championshipID int) ([]*Match, error) {
	results, err := FindWhere(&Match{}, "championshipId = ?", championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for championship %d: %w", championshipID, err)
	}

	matches := make([]*Match, 0, len(results))
	for _, r := range results {
		if m, ok := r.(*Match); ok {
			matches = append(matches, m)
		}
	}
	SortMatchesChronologically(matches)
	return matches, nil
}

// AnalyseChampionship loads a championship from the database and runs the
// full analysis over it
func AnalyseChampionship(championshipID int) (*ChampionshipAnalysis, error) {
	matches, err := LoadMatches(championshipID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no matches found for championship %d", championshipID)
	}
	return AnalyseMatches(championshipID, matches), nil
}

// AnalyseMatches runs the full analysis over the given matches. Statistics,
// ratings, forecasts and bets are all built in one chronological pass, each
// match seeing only what came before it. The cutoff round only affects
// which bets a summary settles, so the pass runs once and the backtest
// sweeps cutoffs over the finished bets
func AnalyseMatches(championshipID int, matches []*Match) *ChampionshipAnalysis {
	a := &ChampionshipAnalysis{
		ChampionshipID: championshipID,
		Matches:        matches,
		Forecasts:      make(map[string]*Forecast, len(matches)),
		Bets:           make(map[string]*MatchBet, len(matches)),
	}

	a.Statistics = ComputePrematchStats(matches)

	ordered := make([]*Match, len(matches))
	copy(ordered, matches)
	SortMatchesChronologically(ordered)

	bankroll := GetBankroll()
	for _, m := range ordered {
		a.Ratings = append(a.Ratings, CalcRating(a.Ratings, m))

		ms, ok := a.Statistics[m.ID]
		if !ok {
			logger.Warn("No prematch statistics for match", m.ID)
			continue
		}
		f := CreateForecast(ms)
		a.Forecasts[m.ID] = f
		a.Bets[m.ID] = CalcBet(m, f, bankroll, Config.Kelly)
	}

	a.ForecastSummary = CalcForecastSummary(matches, a.Forecasts)
	a.BetSummaries = a.runBacktest()

	logger.Highlight("Analysed championship", championshipID,
		"matches", len(matches), "forecast hits", a.ForecastSummary.SumForecast.Percent, "%")
	return a
}

// runBacktest settles the bets once per cutoff round. Early cutoffs settle
// bets made on thin statistics, late cutoffs leave few matches to bet on
func (a *ChampionshipAnalysis) runBacktest() []*BetSummary {
	summaries := make([]*BetSummary, 0, Config.BacktestRounds)
	for round := 1; round <= Config.BacktestRounds; round++ {
		summaries = append(summaries, CalcBetSummary(a.Matches, a.Bets, round))
	}
	return summaries
}

// BestCutoff returns the backtest summary with the highest ROI among those
// that actually placed bets
func (a *ChampionshipAnalysis) BestCutoff() *BetSummary {
	var best *BetSummary
	for _, s := range a.BetSummaries {
		if s.CountStake == 0 {
			continue
		}
		if best == nil || s.TotalROI > best.TotalROI {
			best = s
		}
	}
	return best
}

// Save persists the full analysis: snapshots, ratings, forecasts and bets
func (a *ChampionshipAnalysis) Save() error {
	if err := SaveMatchStatistics(a.Statistics); err != nil {
		return fmt.Errorf("failed to save statistics: %w", err)
	}

	items := make([]Persistable, 0, len(a.Ratings)+len(a.Forecasts)+len(a.Bets))
	for _, r := range a.Ratings {
		items = append(items, r)
	}
	for _, f := range a.Forecasts {
		items = append(items, f)
	}
	for _, b := range a.Bets {
		items = append(items, b)
	}
	if err := BulkSave(items); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	logger.Info("Saved analysis for championship", a.ChampionshipID)
	return nil
}
