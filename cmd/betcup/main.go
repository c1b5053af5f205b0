package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/easmith/betcup/internal/logger"
	"github.com/easmith/betcup/pkg/util/betcup"
)

func main() {
	championship := flag.Int("championship", 0, "championship id to analyse (default: all configured)")
	update := flag.Bool("update", false, "fetch fresh match data before analysing")
	dbPath := flag.String("db", "", "override the sqlite database path")
	bankroll := flag.Float64("bankroll", 0, "override the bankroll")
	rounds := flag.Int("rounds", 0, "override the number of backtest cutoff rounds")
	save := flag.Bool("save", false, "persist statistics, ratings, forecasts and bets")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetLevel(logger.DEBUG)
	} else {
		logger.SetLevel(logger.INFO)
	}

	if *dbPath != "" {
		betcup.Config.DbPath = *dbPath
	}
	if *bankroll > 0 {
		betcup.SetBankroll(*bankroll)
	}
	if *rounds > 0 {
		betcup.Config.BacktestRounds = *rounds
	}
	if err := betcup.ValidateConfig(betcup.Config); err != nil {
		logger.Fatal("Invalid configuration", err)
	}

	if err := run(*championship, *update, *save); err != nil {
		logger.Error("Analysis failed", err)
		os.Exit(1)
	}
}

func run(championship int, update, save bool) error {
	defer betcup.CloseDatabase()

	if err := betcup.InitDatabase(); err != nil {
		return err
	}

	if update {
		if err := betcup.GetDatasourceInstance().Update(); err != nil {
			return err
		}
	}

	championships := betcup.Config.Championships
	if championship != 0 {
		championships = []int{championship}
	}

	for _, id := range championships {
		analysis, err := betcup.AnalyseChampionship(id)
		if err != nil {
			return err
		}
		report(analysis)

		if save {
			if err := analysis.Save(); err != nil {
				return err
			}
		}
	}
	return nil
}

func report(a *betcup.ChampionshipAnalysis) {
	fs := a.ForecastSummary
	logger.Highlight("Championship", a.ChampionshipID, "-", fs.MatchCount, "played matches")
	logger.Info(fmt.Sprintf("Exact scores: %d (%d%%)  differences: %d (%d%%)  outcomes: %d (%d%%)  combined: %d%%",
		fs.ExactScore.Count, fs.ExactScore.Percent,
		fs.Differences.Count, fs.Differences.Percent,
		fs.Outcomes.Count, fs.Outcomes.Percent,
		fs.SumForecast.Percent))
	logger.Info(fmt.Sprintf("Predicted wins %d/%d (%d%%)  draws %d/%d (%d%%)  defeats %d/%d (%d%%)",
		fs.Win.CountCorrect, fs.Win.Count, fs.Win.CorrectPercent,
		fs.Draw.CountCorrect, fs.Draw.Count, fs.Draw.CorrectPercent,
		fs.Defeat.CountCorrect, fs.Defeat.Count, fs.Defeat.CorrectPercent))

	for _, s := range a.BetSummaries {
		if s.CountStake == 0 {
			continue
		}
		logger.Info(fmt.Sprintf("Cutoff %2d: %3d stakes, bet %.2f, won %.2f, ROI %.2f%%",
			s.CutoffRound, s.CountStake, s.TotalBet, s.TotalWin, s.TotalROI))
	}
	if best := a.BestCutoff(); best != nil {
		logger.Highlight(fmt.Sprintf("Best cutoff %d with ROI %.2f%%", best.CutoffRound, best.TotalROI))
	}
}
