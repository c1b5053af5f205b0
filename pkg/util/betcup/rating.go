package betcup

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Compile-time check to ensure MatchRating implements Persistable interface
var _ Persistable = (*MatchRating)(nil)

// MatchRating records the rating state around one match: what both teams
// brought into it, the two-way and three-way probabilities derived from
// that, and what they left with once the result was applied
type MatchRating struct {
	MatchID        string `json:"matchId" column:"matchId" dbtype:"TEXT" primary:"true" index:"true"`
	ChampionshipID int    `json:"championshipId" column:"championshipId" dbtype:"INTEGER DEFAULT -1" index:"true"`
	HomeTeamID     string `json:"homeTeamId" column:"homeTeamId" dbtype:"TEXT NOT NULL" index:"true"`
	AwayTeamID     string `json:"awayTeamId" column:"awayTeamId" dbtype:"TEXT NOT NULL" index:"true"`
	RoundNumber    int    `json:"roundNumber" column:"roundNumber" dbtype:"INTEGER DEFAULT -1"`

	HomeOldRating int `json:"homeOldRating" column:"homeOldRating" dbtype:"INTEGER DEFAULT 0"`
	AwayOldRating int `json:"awayOldRating" column:"awayOldRating" dbtype:"INTEGER DEFAULT 0"`

	// Two-way probabilities, always summing to 100
	HomeWinProb int `json:"homeWinProb" column:"homeWinProb" dbtype:"INTEGER DEFAULT 50"`
	AwayWinProb int `json:"awayWinProb" column:"awayWinProb" dbtype:"INTEGER DEFAULT 50"`

	// Three-way 1X2 probabilities from the pre-match ratings, summing to 100
	WinProb    int `json:"winProb" column:"winProb" dbtype:"INTEGER DEFAULT 0"`
	DrawProb   int `json:"drawProb" column:"drawProb" dbtype:"INTEGER DEFAULT 0"`
	DefeatProb int `json:"defeatProb" column:"defeatProb" dbtype:"INTEGER DEFAULT 0"`

	HomeNewRating int `json:"homeNewRating" column:"homeNewRating" dbtype:"INTEGER DEFAULT 0"`
	AwayNewRating int `json:"awayNewRating" column:"awayNewRating" dbtype:"INTEGER DEFAULT 0"`
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

func (r *MatchRating) GetPrimaryKey() map[string]interface{} {
	return map[string]any{
		"matchId": r.MatchID,
	}
}

func (r *MatchRating) SetPrimaryKey(pk map[string]interface{}) error {
	if id, ok := pk["matchId"]; ok {
		if idStr, ok := id.(string); ok {
			r.MatchID = idStr
			return nil
		}
		return fmt.Errorf("primary key 'matchId' must be a string")
	}
	return fmt.Errorf("primary key 'matchId' not found")
}

// GetTableName returns the table name for rating rows
func (r *MatchRating) GetTableName() string {
	return "rating"
}

func (r *MatchRating) BeforeSave() error {
	if r.MatchID == "" {
		return fmt.Errorf("rating has no match id")
	}
	return nil
}

func (r *MatchRating) AfterSave() error    { return nil }
func (r *MatchRating) BeforeDelete() error { return nil }
func (r *MatchRating) AfterDelete() error  { return nil }

/////////////////////////////////////////////////////////////////////////
////// Rating calculations
/////////////////////////////////////////////////////////////////////////

// CurrentRating scans the history backwards for the most recent match the
// team took part in and returns the rating it left with. Teams with no
// history start at 0
func CurrentRating(history []*MatchRating, teamID string) int {
	for i := len(history) - 1; i >= 0; i-- {
		r := history[i]
		if r.HomeTeamID == teamID {
			return r.HomeNewRating
		}
		if r.AwayTeamID == teamID {
			return r.AwayNewRating
		}
	}
	return 0
}

// WinProbabilityPair converts a rating gap into two-way win probabilities.
// The gap is scaled down by 20 and clamped to 45 so the weaker side always
// keeps at least a 5 percent chance. The pair always sums to 100
func WinProbabilityPair(homeRating, awayRating int) (home, away int) {
	d := decimal.NewFromInt(int64(homeRating - awayRating)).
		Div(decimal.NewFromInt(20))
	diff := int(roundHalfUp(d, 0).IntPart())
	if diff > 45 {
		diff = 45
	} else if diff < -45 {
		diff = -45
	}
	return 50 + diff, 50 - diff
}

// CalcRating builds the rating row for a match from the history so far.
// It does not mutate the history, the caller appends the returned row.
// A fixture with no result leaves both ratings unchanged
func CalcRating(history []*MatchRating, m *Match) *MatchRating {
	homeOld := CurrentRating(history, m.HomeTeamID)
	awayOld := CurrentRating(history, m.AwayTeamID)
	homeProb, awayProb := WinProbabilityPair(homeOld, awayOld)
	win, draw, defeat := MatchProbabilities(homeOld, awayOld)

	r := &MatchRating{
		MatchID:        m.ID,
		ChampionshipID: m.ChampionshipID,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		RoundNumber:    m.RoundNumber,
		HomeOldRating:  homeOld,
		AwayOldRating:  awayOld,
		HomeWinProb:    homeProb,
		AwayWinProb:    awayProb,
		WinProb:        win,
		DrawProb:       draw,
		DefeatProb:     defeat,
		HomeNewRating:  homeOld,
		AwayNewRating:  awayOld,
	}
	if !m.HasResult() {
		return r
	}

	// An unexpected result moves ratings further than an expected one:
	// each side gains or loses in proportion to how likely the other
	// side's win was
	switch m.Outcome() {
	case OutcomeWin:
		r.HomeNewRating += awayProb
		r.AwayNewRating -= awayProb
	case OutcomeDraw:
		r.HomeNewRating += awayProb - 50
		r.AwayNewRating += homeProb - 50
	case OutcomeDefeat:
		r.HomeNewRating -= homeProb
		r.AwayNewRating += homeProb
	}

	// Margin of victory term
	goalDiff := 3 * (m.HomeScore - m.AwayScore)
	r.HomeNewRating += goalDiff
	r.AwayNewRating -= goalDiff

	// Home advantage correction
	r.HomeNewRating -= 5
	r.AwayNewRating += 5

	return r
}

// ComputeRatings runs one chronological pass over the matches and returns
// the full rating history
func ComputeRatings(matches []*Match) []*MatchRating {
	ordered := make([]*Match, len(matches))
	copy(ordered, matches)
	SortMatchesChronologically(ordered)

	history := make([]*MatchRating, 0, len(ordered))
	for _, m := range ordered {
		history = append(history, CalcRating(history, m))
	}
	return history
}

// MatchProbabilities turns the two-way pair into a three-way 1X2 split.
// The draw takes a fixed 25 percent, the remaining 75 is shared in
// proportion to the two-way pair, then a 5 point home advantage shift is
// applied. The result is clamped at 0 and corrected on the larger side so
// the three always sum to exactly 100
func MatchProbabilities(homeRating, awayRating int) (win, draw, defeat int) {
	homeProb, _ := WinProbabilityPair(homeRating, awayRating)

	draw = 25
	win = RoundWhole(float64(homeProb)*75, 100)
	defeat = 75 - win

	win += 5
	defeat -= 5

	if win < 0 {
		win = 0
	}
	if defeat < 0 {
		defeat = 0
	}
	if drift := win + draw + defeat - 100; drift != 0 {
		if win >= defeat {
			win -= drift
		} else {
			defeat -= drift
		}
	}
	return win, draw, defeat
}
