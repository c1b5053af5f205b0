package betcup

import (
	"fmt"
	"sort"
	"time"
)

// Compile-time check to ensure Match implements Persistable interface
var _ Persistable = (*Match)(nil)

// Match outcome classes from the home team's point of view
const (
	OutcomeUnknown = ""
	OutcomeWin     = "win"
	OutcomeDraw    = "draw"
	OutcomeDefeat  = "defeat"
)

// Match represents a single fixture or played match with database persistence annotations
type Match struct {
	// Primary key
	ID string `json:"id" column:"id" dbtype:"TEXT" primary:"true" index:"true"`
	// Info
	ChampionshipID int       `json:"championshipId" column:"championshipId" dbtype:"INTEGER DEFAULT -1" index:"true"`
	GameDate       time.Time `json:"gameDate" column:"gameDate" dbtype:"DATETIME" index:"true"`
	RoundName      string    `json:"roundName" column:"roundName" dbtype:"TEXT"`
	RoundNumber    int       `json:"roundNumber" column:"roundNumber" dbtype:"INTEGER DEFAULT -1" index:"true"`
	IsFixture      bool      `json:"isFixture" column:"isFixture" dbtype:"BOOLEAN DEFAULT 0"`

	// Teams
	HomeTeamID   string `json:"homeTeamId" column:"homeTeamId" dbtype:"TEXT NOT NULL" index:"true"`
	AwayTeamID   string `json:"awayTeamId" column:"awayTeamId" dbtype:"TEXT NOT NULL" index:"true"`
	HomeTeamName string `json:"homeTeamName" column:"homeTeamName" dbtype:"TEXT NOT NULL"`
	AwayTeamName string `json:"awayTeamName" column:"awayTeamName" dbtype:"TEXT NOT NULL"`

	// Result. -1 means not yet played
	HomeScore   int    `json:"homeScore" column:"homeScore" dbtype:"INTEGER DEFAULT -1"`
	AwayScore   int    `json:"awayScore" column:"awayScore" dbtype:"INTEGER DEFAULT -1"`
	ScoreHalves string `json:"scoreHalves,omitempty" column:"scoreHalves" dbtype:"TEXT"`

	// 1X2 closing odds. -1.0 means no odds published
	OddsHome float64 `json:"odds1,omitempty" column:"oddsHome" dbtype:"REAL DEFAULT -1.0"`
	OddsDraw float64 `json:"oddsX,omitempty" column:"oddsDraw" dbtype:"REAL DEFAULT -1.0"`
	OddsAway float64 `json:"odds2,omitempty" column:"oddsAway" dbtype:"REAL DEFAULT -1.0"`

	// Match details
	MatchUrl string `json:"matchUrl,omitempty" column:"matchUrl" dbtype:"TEXT"`

	// Metadata
	CreatedAt time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

// NewMatch creates a new Match with default values for numeric fields
// All numeric fields default to -1 (int) or -1.0 (float64) to distinguish from valid zero values
func NewMatch() *Match {
	return &Match{
		ChampionshipID: -1,
		RoundNumber:    -1,
		HomeScore:      -1,
		AwayScore:      -1,
		OddsHome:       -1.0,
		OddsDraw:       -1.0,
		OddsAway:       -1.0,
	}
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetPrimaryKey returns the primary key as a map
func (m *Match) GetPrimaryKey() map[string]interface{} {
	return map[string]any{
		"id": m.ID,
	}
}

// SetPrimaryKey sets the primary key from a map
func (m *Match) SetPrimaryKey(pk map[string]interface{}) error {
	if id, ok := pk["id"]; ok {
		if idStr, ok := id.(string); ok {
			m.ID = idStr
			return nil
		}
		return fmt.Errorf("primary key 'id' must be a string")
	}
	return fmt.Errorf("primary key 'id' not found")
}

// GetTableName returns the table name for matches
func (m *Match) GetTableName() string {
	return "match"
}

// BeforeSave is called before saving the match
func (m *Match) BeforeSave() error {
	if m.ID == "" {
		return fmt.Errorf("match has no id")
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}

// AfterSave is called after saving the match
func (m *Match) AfterSave() error {
	return nil
}

// BeforeDelete is called before deleting the match
func (m *Match) BeforeDelete() error {
	return nil
}

// AfterDelete is called after deleting the match
func (m *Match) AfterDelete() error {
	return nil
}

/////////////////////////////////////////////////////////////////////////
////// Status Query Methods
/////////////////////////////////////////////////////////////////////////

// HasResult determines if the match has a final score
func (m *Match) HasResult() bool {
	return m.HomeScore >= 0 && m.AwayScore >= 0
}

// HasOdds determines if the bookmaker published a full 1X2 line
func (m *Match) HasOdds() bool {
	return m.OddsHome > 0 && m.OddsDraw > 0 && m.OddsAway > 0
}

// HasRound determines if the match has been assigned to a numbered round
func (m *Match) HasRound() bool {
	return m.RoundNumber >= 0
}

// Outcome classifies the final score from the home team's point of view
// Returns OutcomeUnknown when the match has no result
func (m *Match) Outcome() string {
	if !m.HasResult() {
		return OutcomeUnknown
	}
	switch {
	case m.HomeScore > m.AwayScore:
		return OutcomeWin
	case m.HomeScore < m.AwayScore:
		return OutcomeDefeat
	default:
		return OutcomeDraw
	}
}

// OutcomeFor classifies the final score from the given team's point of view
func (m *Match) OutcomeFor(teamID string) string {
	o := m.Outcome()
	if o == OutcomeUnknown || teamID == m.HomeTeamID {
		return o
	}
	switch o {
	case OutcomeWin:
		return OutcomeDefeat
	case OutcomeDefeat:
		return OutcomeWin
	default:
		return OutcomeDraw
	}
}

// GoalsFor returns goals scored and conceded from the given team's point of view
func (m *Match) GoalsFor(teamID string) (scored, conceded int) {
	if teamID == m.HomeTeamID {
		return m.HomeScore, m.AwayScore
	}
	return m.AwayScore, m.HomeScore
}

// Involves reports whether the given team played in this match
func (m *Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// ScoreStr generates the score string, empty when the match has no result
func (m *Match) ScoreStr() string {
	if !m.HasResult() {
		return ""
	}
	return fmt.Sprintf("%d:%d", m.HomeScore, m.AwayScore)
}

/////////////////////////////////////////////////////////////////////////
////// Ordering helpers
/////////////////////////////////////////////////////////////////////////

// SortMatchesChronologically orders matches by kickoff time, then round
// number, then ID for a stable order when timestamps collide
func SortMatchesChronologically(matches []*Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if !a.GameDate.Equal(b.GameDate) {
			return a.GameDate.Before(b.GameDate)
		}
		if a.RoundNumber != b.RoundNumber {
			return a.RoundNumber < b.RoundNumber
		}
		return a.ID < b.ID
	})
}

// MaxRoundNumber returns the highest assigned round number, or -1 when no
// match carries one
func MaxRoundNumber(matches []*Match) int {
	max := -1
	for _, m := range matches {
		if m.RoundNumber > max {
			max = m.RoundNumber
		}
	}
	return max
}
