package betcup

import (
	"fmt"
)

// Compile-time check to ensure Forecast implements Persistable interface
var _ Persistable = (*Forecast)(nil)

// Forecast holds the three outcome scenarios for a match and the scoreline
// picked from the strongest one. Built purely from prematch statistics, so
// it can be produced for fixtures as well as backtested against results
type Forecast struct {
	MatchID        string `json:"matchId" column:"matchId" dbtype:"TEXT" primary:"true" index:"true"`
	ChampionshipID int    `json:"championshipId" column:"championshipId" dbtype:"INTEGER DEFAULT -1" index:"true"`
	HomeTeamID     string `json:"homeTeamId" column:"homeTeamId" dbtype:"TEXT NOT NULL"`
	AwayTeamID     string `json:"awayTeamId" column:"awayTeamId" dbtype:"TEXT NOT NULL"`
	RoundNumber    int    `json:"roundNumber" column:"roundNumber" dbtype:"INTEGER DEFAULT -1" index:"true"`

	// Scenario likelihoods, each the mean of the two teams' supporting
	// percentages. They need not sum to 100
	WinPercent    int `json:"winPercent" column:"winPercent" dbtype:"INTEGER DEFAULT 0"`
	DrawPercent   int `json:"drawPercent" column:"drawPercent" dbtype:"INTEGER DEFAULT 0"`
	DefeatPercent int `json:"defeatPercent" column:"defeatPercent" dbtype:"INTEGER DEFAULT 0"`

	// Scoreline attached to each scenario
	WinHomeGoals    int `json:"winHomeGoals" column:"winHomeGoals" dbtype:"INTEGER DEFAULT 0"`
	WinAwayGoals    int `json:"winAwayGoals" column:"winAwayGoals" dbtype:"INTEGER DEFAULT 0"`
	DrawHomeGoals   int `json:"drawHomeGoals" column:"drawHomeGoals" dbtype:"INTEGER DEFAULT 0"`
	DrawAwayGoals   int `json:"drawAwayGoals" column:"drawAwayGoals" dbtype:"INTEGER DEFAULT 0"`
	DefeatHomeGoals int `json:"defeatHomeGoals" column:"defeatHomeGoals" dbtype:"INTEGER DEFAULT 0"`
	DefeatAwayGoals int `json:"defeatAwayGoals" column:"defeatAwayGoals" dbtype:"INTEGER DEFAULT 0"`

	// The pick
	Outcome   string `json:"outcome" column:"outcome" dbtype:"TEXT"`
	HomeGoals int    `json:"homeGoals" column:"homeGoals" dbtype:"INTEGER DEFAULT 0"`
	AwayGoals int    `json:"awayGoals" column:"awayGoals" dbtype:"INTEGER DEFAULT 0"`
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

func (f *Forecast) GetPrimaryKey() map[string]interface{} {
	return map[string]any{
		"matchId": f.MatchID,
	}
}

func (f *Forecast) SetPrimaryKey(pk map[string]interface{}) error {
	if id, ok := pk["matchId"]; ok {
		if idStr, ok := id.(string); ok {
			f.MatchID = idStr
			return nil
		}
		return fmt.Errorf("primary key 'matchId' must be a string")
	}
	return fmt.Errorf("primary key 'matchId' not found")
}

// GetTableName returns the table name for forecasts
func (f *Forecast) GetTableName() string {
	return "forecast"
}

func (f *Forecast) BeforeSave() error {
	if f.MatchID == "" {
		return fmt.Errorf("forecast has no match id")
	}
	return nil
}

func (f *Forecast) AfterSave() error    { return nil }
func (f *Forecast) BeforeDelete() error { return nil }
func (f *Forecast) AfterDelete() error  { return nil }

/////////////////////////////////////////////////////////////////////////
////// Forecast construction
/////////////////////////////////////////////////////////////////////////

// forecastGoals averages two contributing goal figures. When either side has
// no supporting matches its zero average would drag the mean down for the
// wrong reason, so the divisor drops to 1 and the lone figure stands alone.
// Scorelines round half down
func forecastGoals(homeAvg float64, homeCount int, awayAvg float64, awayCount int) int {
	divisor := 2
	if homeCount == 0 || awayCount == 0 {
		divisor = 1
	}
	return RoundGoal(homeAvg+awayAvg, divisor)
}

// CreateForecast builds the forecast for a match from the prematch snapshot.
// The home team contributes its home bucket, the away team its away bucket.
// Each scenario pairs mirrored figures: a home win is supported by the home
// team winning at home and the away team losing away
func CreateForecast(ms *MatchStatistics) *Forecast {
	m := ms.Match
	home := ms.Home.Home
	away := ms.Away.Away

	f := &Forecast{
		MatchID:        m.ID,
		ChampionshipID: m.ChampionshipID,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		RoundNumber:    m.RoundNumber,
	}

	f.WinPercent = RoundWhole(float64(home.WinPercent+away.DefeatPercent), 2)
	f.DrawPercent = RoundWhole(float64(home.DrawPercent+away.DrawPercent), 2)
	f.DefeatPercent = RoundWhole(float64(home.DefeatPercent+away.WinPercent), 2)

	f.WinHomeGoals = forecastGoals(home.WinScoredAvg, home.WinCount, away.DefeatConcededAvg, away.DefeatCount)
	f.WinAwayGoals = forecastGoals(home.WinConcededAvg, home.WinCount, away.DefeatScoredAvg, away.DefeatCount)
	f.DrawHomeGoals = forecastGoals(home.DrawScoredAvg, home.DrawCount, away.DrawConcededAvg, away.DrawCount)
	f.DrawAwayGoals = forecastGoals(home.DrawConcededAvg, home.DrawCount, away.DrawScoredAvg, away.DrawCount)
	f.DefeatHomeGoals = forecastGoals(home.DefeatScoredAvg, home.DefeatCount, away.WinConcededAvg, away.WinCount)
	f.DefeatAwayGoals = forecastGoals(home.DefeatConcededAvg, home.DefeatCount, away.WinScoredAvg, away.WinCount)

	f.pickOutcome()
	return f
}

// pickOutcome selects the scenario to stand behind. A dead heat between win
// and defeat falls back to the draw, otherwise the win needs to at least
// match the draw and beat the defeat
func (f *Forecast) pickOutcome() {
	switch {
	case f.WinPercent == f.DefeatPercent:
		f.Outcome = OutcomeDraw
	case f.WinPercent >= f.DrawPercent && f.WinPercent > f.DefeatPercent:
		f.Outcome = OutcomeWin
	case f.DrawPercent > f.DefeatPercent:
		f.Outcome = OutcomeDraw
	default:
		f.Outcome = OutcomeDefeat
	}

	switch f.Outcome {
	case OutcomeWin:
		f.HomeGoals, f.AwayGoals = f.WinHomeGoals, f.WinAwayGoals
	case OutcomeDraw:
		f.HomeGoals, f.AwayGoals = f.DrawHomeGoals, f.DrawAwayGoals
	default:
		f.HomeGoals, f.AwayGoals = f.DefeatHomeGoals, f.DefeatAwayGoals
	}
}

// TotalGoals returns the predicted total for the picked scoreline
func (f *Forecast) TotalGoals() int {
	return f.HomeGoals + f.AwayGoals
}

// ExactScoreCorrect reports whether the picked scoreline matched the result
func (f *Forecast) ExactScoreCorrect(m *Match) bool {
	return m.HasResult() && f.HomeGoals == m.HomeScore && f.AwayGoals == m.AwayScore
}

// GoalDiffCorrect reports whether the picked goal difference matched the
// result without the exact score doing so
func (f *Forecast) GoalDiffCorrect(m *Match) bool {
	return m.HasResult() && f.HomeGoals-f.AwayGoals == m.HomeScore-m.AwayScore
}

// OutcomeCorrect reports whether the picked outcome class matched the result
func (f *Forecast) OutcomeCorrect(m *Match) bool {
	return m.HasResult() && f.Outcome == m.Outcome()
}
