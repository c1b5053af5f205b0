package betcup

import (
	"fmt"

	"github.com/easmith/betcup/internal/logger"
)

// Field type buckets. Every result feeds "all" plus the bucket matching the
// side of the pitch the team played on
const (
	FieldAll  = "all"
	FieldHome = "home"
	FieldAway = "away"
)

// Compile-time check to ensure GoalStatistics implements Persistable interface
var _ Persistable = (*GoalStatistics)(nil)

// GoalStatistics holds the cumulative goal and outcome figures for one team
// in one field type bucket, as they stood BEFORE a given match kicked off.
// All derived averages and percentages are kept current by Recalc so a plain
// value copy is a complete snapshot
type GoalStatistics struct {
	// Composite primary key: the match this snapshot was taken for, the team
	// it describes and the field type bucket
	MatchID        string `json:"matchId" column:"matchId" dbtype:"TEXT" primary:"true" index:"true"`
	TeamID         string `json:"teamId" column:"teamId" dbtype:"TEXT" primary:"true" index:"true"`
	Field          string `json:"field" column:"field" dbtype:"TEXT" primary:"true"`
	ChampionshipID int    `json:"championshipId" column:"championshipId" dbtype:"INTEGER DEFAULT -1" index:"true"`

	MatchCount int `json:"matchCount" column:"matchCount" dbtype:"INTEGER DEFAULT 0"`

	GoalsScoredSum   int     `json:"goalsScoredSum" column:"goalsScoredSum" dbtype:"INTEGER DEFAULT 0"`
	GoalsConcededSum int     `json:"goalsConcededSum" column:"goalsConcededSum" dbtype:"INTEGER DEFAULT 0"`
	GoalsScoredAvg   float64 `json:"goalsScoredAvg" column:"goalsScoredAvg" dbtype:"REAL DEFAULT 0"`
	GoalsConcededAvg float64 `json:"goalsConcededAvg" column:"goalsConcededAvg" dbtype:"REAL DEFAULT 0"`
	GoalsTotalAvg    float64 `json:"goalsTotalAvg" column:"goalsTotalAvg" dbtype:"REAL DEFAULT 0"`

	WinCount    int `json:"winCount" column:"winCount" dbtype:"INTEGER DEFAULT 0"`
	DrawCount   int `json:"drawCount" column:"drawCount" dbtype:"INTEGER DEFAULT 0"`
	DefeatCount int `json:"defeatCount" column:"defeatCount" dbtype:"INTEGER DEFAULT 0"`

	WinPercent    int `json:"winPercent" column:"winPercent" dbtype:"INTEGER DEFAULT 0"`
	DrawPercent   int `json:"drawPercent" column:"drawPercent" dbtype:"INTEGER DEFAULT 0"`
	DefeatPercent int `json:"defeatPercent" column:"defeatPercent" dbtype:"INTEGER DEFAULT 0"`

	// Goals split by the outcome class of the match they were scored in.
	// Win/defeat pairs of opposing teams mirror each other, which is what
	// the forecast scenarios lean on
	WinScoredSum      int     `json:"winScoredSum" column:"winScoredSum" dbtype:"INTEGER DEFAULT 0"`
	WinConcededSum    int     `json:"winConcededSum" column:"winConcededSum" dbtype:"INTEGER DEFAULT 0"`
	DrawScoredSum     int     `json:"drawScoredSum" column:"drawScoredSum" dbtype:"INTEGER DEFAULT 0"`
	DrawConcededSum   int     `json:"drawConcededSum" column:"drawConcededSum" dbtype:"INTEGER DEFAULT 0"`
	DefeatScoredSum   int     `json:"defeatScoredSum" column:"defeatScoredSum" dbtype:"INTEGER DEFAULT 0"`
	DefeatConcededSum int     `json:"defeatConcededSum" column:"defeatConcededSum" dbtype:"INTEGER DEFAULT 0"`
	WinScoredAvg      float64 `json:"winScoredAvg" column:"winScoredAvg" dbtype:"REAL DEFAULT 0"`
	WinConcededAvg    float64 `json:"winConcededAvg" column:"winConcededAvg" dbtype:"REAL DEFAULT 0"`
	DrawScoredAvg     float64 `json:"drawScoredAvg" column:"drawScoredAvg" dbtype:"REAL DEFAULT 0"`
	DrawConcededAvg   float64 `json:"drawConcededAvg" column:"drawConcededAvg" dbtype:"REAL DEFAULT 0"`
	DefeatScoredAvg   float64 `json:"defeatScoredAvg" column:"defeatScoredAvg" dbtype:"REAL DEFAULT 0"`
	DefeatConcededAvg float64 `json:"defeatConcededAvg" column:"defeatConcededAvg" dbtype:"REAL DEFAULT 0"`
}

// NewGoalStatistics returns an empty accumulator for the given bucket with
// the neutral outcome split already applied
func NewGoalStatistics(field string) GoalStatistics {
	gs := GoalStatistics{Field: field, ChampionshipID: -1}
	gs.Recalc()
	return gs
}

// AddResult feeds one final score into the accumulator, seen from the point
// of view of the team this bucket belongs to
func (gs *GoalStatistics) AddResult(scored, conceded int) {
	gs.MatchCount++
	gs.GoalsScoredSum += scored
	gs.GoalsConcededSum += conceded
	switch {
	case scored > conceded:
		gs.WinCount++
		gs.WinScoredSum += scored
		gs.WinConcededSum += conceded
	case scored < conceded:
		gs.DefeatCount++
		gs.DefeatScoredSum += scored
		gs.DefeatConcededSum += conceded
	default:
		gs.DrawCount++
		gs.DrawScoredSum += scored
		gs.DrawConcededSum += conceded
	}
	gs.Recalc()
}

// Recalc refreshes every derived average and percentage from the raw sums.
// With no matches recorded the outcome split falls back to the neutral
// 33/33/34 prior so the percentages still sum to 100
func (gs *GoalStatistics) Recalc() {
	gs.GoalsScoredAvg = Average(float64(gs.GoalsScoredSum), gs.MatchCount)
	gs.GoalsConcededAvg = Average(float64(gs.GoalsConcededSum), gs.MatchCount)
	gs.GoalsTotalAvg = Average(float64(gs.GoalsScoredSum+gs.GoalsConcededSum), gs.MatchCount)

	if gs.MatchCount == 0 {
		gs.WinPercent = 33
		gs.DrawPercent = 33
		gs.DefeatPercent = 34
	} else {
		gs.WinPercent = AveragePercent(float64(gs.WinCount), gs.MatchCount)
		gs.DefeatPercent = AveragePercent(float64(gs.DefeatCount), gs.MatchCount)
		// The draw takes the remainder so the three always sum to 100
		gs.DrawPercent = 100 - gs.WinPercent - gs.DefeatPercent
	}

	gs.WinScoredAvg = Average(float64(gs.WinScoredSum), gs.WinCount)
	gs.WinConcededAvg = Average(float64(gs.WinConcededSum), gs.WinCount)
	gs.DrawScoredAvg = Average(float64(gs.DrawScoredSum), gs.DrawCount)
	gs.DrawConcededAvg = Average(float64(gs.DrawConcededSum), gs.DrawCount)
	gs.DefeatScoredAvg = Average(float64(gs.DefeatScoredSum), gs.DefeatCount)
	gs.DefeatConcededAvg = Average(float64(gs.DefeatConcededSum), gs.DefeatCount)
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetPrimaryKey returns the composite primary key as a map
func (gs *GoalStatistics) GetPrimaryKey() map[string]interface{} {
	return map[string]any{
		"matchId": gs.MatchID,
		"teamId":  gs.TeamID,
		"field":   gs.Field,
	}
}

// SetPrimaryKey sets the composite primary key from a map
func (gs *GoalStatistics) SetPrimaryKey(pk map[string]interface{}) error {
	matchID, ok := pk["matchId"].(string)
	if !ok {
		return fmt.Errorf("primary key 'matchId' must be a string")
	}
	teamID, ok := pk["teamId"].(string)
	if !ok {
		return fmt.Errorf("primary key 'teamId' must be a string")
	}
	field, ok := pk["field"].(string)
	if !ok {
		return fmt.Errorf("primary key 'field' must be a string")
	}
	gs.MatchID = matchID
	gs.TeamID = teamID
	gs.Field = field
	return nil
}

// GetTableName returns the table name for goal statistics snapshots
func (gs *GoalStatistics) GetTableName() string {
	return "statistic"
}

func (gs *GoalStatistics) BeforeSave() error {
	if gs.MatchID == "" || gs.TeamID == "" || gs.Field == "" {
		return fmt.Errorf("statistic snapshot has an incomplete key")
	}
	return nil
}

func (gs *GoalStatistics) AfterSave() error    { return nil }
func (gs *GoalStatistics) BeforeDelete() error { return nil }
func (gs *GoalStatistics) AfterDelete() error  { return nil }

/////////////////////////////////////////////////////////////////////////
////// Field type grouping
/////////////////////////////////////////////////////////////////////////

// FieldTypeTotals groups the three buckets a team accumulates: everything,
// home fixtures only and away fixtures only. Held by value so a struct copy
// is an isolated snapshot
type FieldTypeTotals struct {
	All  GoalStatistics `json:"all"`
	Home GoalStatistics `json:"home"`
	Away GoalStatistics `json:"away"`
}

// NewFieldTypeTotals returns empty accumulators for all three buckets
func NewFieldTypeTotals() FieldTypeTotals {
	return FieldTypeTotals{
		All:  NewGoalStatistics(FieldAll),
		Home: NewGoalStatistics(FieldHome),
		Away: NewGoalStatistics(FieldAway),
	}
}

// AddResult feeds one final score into the "all" bucket and into the bucket
// matching the side the team played on
func (ft *FieldTypeTotals) AddResult(scored, conceded int, playedAtHome bool) {
	ft.All.AddResult(scored, conceded)
	if playedAtHome {
		ft.Home.AddResult(scored, conceded)
	} else {
		ft.Away.AddResult(scored, conceded)
	}
}

// stamp writes the snapshot identity onto all three buckets so they can be
// persisted under the composite key
func (ft *FieldTypeTotals) stamp(matchID, teamID string, championshipID int) {
	for _, gs := range []*GoalStatistics{&ft.All, &ft.Home, &ft.Away} {
		gs.MatchID = matchID
		gs.TeamID = teamID
		gs.ChampionshipID = championshipID
	}
}

// Persistables returns the three buckets for bulk saving
func (ft *FieldTypeTotals) Persistables() []Persistable {
	return []Persistable{&ft.All, &ft.Home, &ft.Away}
}

/////////////////////////////////////////////////////////////////////////
////// Prematch computation
/////////////////////////////////////////////////////////////////////////

// MatchStatistics pairs a match with the cumulative figures of both teams as
// they stood before kickoff
type MatchStatistics struct {
	Match *Match          `json:"match"`
	Home  FieldTypeTotals `json:"home"`
	Away  FieldTypeTotals `json:"away"`
}

// ComputePrematchStats runs one chronological pass over the matches of a
// championship and records, for every match, the figures of both teams
// before that match was played. Fixtures without a result still receive a
// snapshot but never feed the accumulators, so calling this on a grown
// match list reproduces all earlier snapshots unchanged
func ComputePrematchStats(matches []*Match) map[string]*MatchStatistics {
	ordered := make([]*Match, len(matches))
	copy(ordered, matches)
	SortMatchesChronologically(ordered)

	totals := make(map[string]FieldTypeTotals)
	snapshots := make(map[string]*MatchStatistics, len(ordered))

	for _, m := range ordered {
		if _, ok := totals[m.HomeTeamID]; !ok {
			totals[m.HomeTeamID] = NewFieldTypeTotals()
		}
		if _, ok := totals[m.AwayTeamID]; !ok {
			totals[m.AwayTeamID] = NewFieldTypeTotals()
		}

		// Snapshot before the result is applied
		homeSnap := totals[m.HomeTeamID]
		awaySnap := totals[m.AwayTeamID]
		homeSnap.stamp(m.ID, m.HomeTeamID, m.ChampionshipID)
		awaySnap.stamp(m.ID, m.AwayTeamID, m.ChampionshipID)
		snapshots[m.ID] = &MatchStatistics{Match: m, Home: homeSnap, Away: awaySnap}

		if !m.HasResult() {
			continue
		}
		homeTotals := totals[m.HomeTeamID]
		homeTotals.AddResult(m.HomeScore, m.AwayScore, true)
		totals[m.HomeTeamID] = homeTotals

		awayTotals := totals[m.AwayTeamID]
		awayTotals.AddResult(m.AwayScore, m.HomeScore, false)
		totals[m.AwayTeamID] = awayTotals
	}

	logger.Debug("Computed prematch statistics for", len(snapshots), "matches")
	return snapshots
}

// SaveMatchStatistics persists every bucket of every snapshot
func SaveMatchStatistics(snapshots map[string]*MatchStatistics) error {
	items := make([]Persistable, 0, len(snapshots)*6)
	for _, ms := range snapshots {
		items = append(items, ms.Home.Persistables()...)
		items = append(items, ms.Away.Persistables()...)
	}
	return BulkSave(items)
}
