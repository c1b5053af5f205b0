package betcup

import (
	"fmt"

	"github.com/easmith/betcup/internal/logger"
)

// Compile-time check to ensure MatchBet implements Persistable interface
var _ Persistable = (*MatchBet)(nil)

// MatchBet holds the three Kelly-sized legs for one match, one per 1X2
// outcome. The full leg details live in the embedded KellyStake values,
// the flattened columns are what gets persisted
type MatchBet struct {
	MatchID        string `json:"matchId" column:"matchId" dbtype:"TEXT" primary:"true" index:"true"`
	ChampionshipID int    `json:"championshipId" column:"championshipId" dbtype:"INTEGER DEFAULT -1" index:"true"`
	RoundNumber    int    `json:"roundNumber" column:"roundNumber" dbtype:"INTEGER DEFAULT -1" index:"true"`

	WinStake        float64 `json:"winStake" column:"winStake" dbtype:"REAL DEFAULT -1.0"`
	WinPotentialWin float64 `json:"winPotentialWin" column:"winPotentialWin" dbtype:"REAL DEFAULT -1.0"`

	DrawStake        float64 `json:"drawStake" column:"drawStake" dbtype:"REAL DEFAULT -1.0"`
	DrawPotentialWin float64 `json:"drawPotentialWin" column:"drawPotentialWin" dbtype:"REAL DEFAULT -1.0"`

	DefeatStake        float64 `json:"defeatStake" column:"defeatStake" dbtype:"REAL DEFAULT -1.0"`
	DefeatPotentialWin float64 `json:"defeatPotentialWin" column:"defeatPotentialWin" dbtype:"REAL DEFAULT -1.0"`

	// Full calculation detail, in memory only
	Win    *KellyStake `json:"winBet,omitempty"`
	Draw   *KellyStake `json:"drawBet,omitempty"`
	Defeat *KellyStake `json:"defeatBet,omitempty"`
}

// NewMatchBet creates a MatchBet with sentinel stakes
func NewMatchBet(matchID string) *MatchBet {
	return &MatchBet{
		MatchID:            matchID,
		ChampionshipID:     -1,
		RoundNumber:        -1,
		WinStake:           -1,
		WinPotentialWin:    -1,
		DrawStake:          -1,
		DrawPotentialWin:   -1,
		DefeatStake:        -1,
		DefeatPotentialWin: -1,
	}
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

func (b *MatchBet) GetPrimaryKey() map[string]interface{} {
	return map[string]any{
		"matchId": b.MatchID,
	}
}

func (b *MatchBet) SetPrimaryKey(pk map[string]interface{}) error {
	if id, ok := pk["matchId"]; ok {
		if idStr, ok := id.(string); ok {
			b.MatchID = idStr
			return nil
		}
		return fmt.Errorf("primary key 'matchId' must be a string")
	}
	return fmt.Errorf("primary key 'matchId' not found")
}

// GetTableName returns the table name for bets
func (b *MatchBet) GetTableName() string {
	return "bet"
}

// BeforeSave flattens the leg details into the persisted columns
func (b *MatchBet) BeforeSave() error {
	if b.MatchID == "" {
		return fmt.Errorf("bet has no match id")
	}
	if b.Win != nil {
		b.WinStake = b.Win.Stake
		b.WinPotentialWin = b.Win.PotentialWin
	}
	if b.Draw != nil {
		b.DrawStake = b.Draw.Stake
		b.DrawPotentialWin = b.Draw.PotentialWin
	}
	if b.Defeat != nil {
		b.DefeatStake = b.Defeat.Stake
		b.DefeatPotentialWin = b.Defeat.PotentialWin
	}
	return nil
}

func (b *MatchBet) AfterSave() error    { return nil }
func (b *MatchBet) BeforeDelete() error { return nil }
func (b *MatchBet) AfterDelete() error  { return nil }

/////////////////////////////////////////////////////////////////////////
////// Bet construction
/////////////////////////////////////////////////////////////////////////

// legs walks the three outcome legs with their stake and potential win
func (b *MatchBet) legs() []struct {
	Outcome      string
	Stake        float64
	PotentialWin float64
} {
	return []struct {
		Outcome      string
		Stake        float64
		PotentialWin float64
	}{
		{OutcomeWin, b.WinStake, b.WinPotentialWin},
		{OutcomeDraw, b.DrawStake, b.DrawPotentialWin},
		{OutcomeDefeat, b.DefeatStake, b.DefeatPotentialWin},
	}
}

// CalcBet sizes all three legs of a match from the forecast percentages and
// the bookmaker's 1X2 line. Legs without odds stay at the -1 sentinel
func CalcBet(m *Match, f *Forecast, bankroll float64, kp KellyParams) *MatchBet {
	b := NewMatchBet(m.ID)
	b.ChampionshipID = m.ChampionshipID
	b.RoundNumber = m.RoundNumber

	b.Win = CalcKellyStake(float64(f.WinPercent)/100, m.OddsHome, bankroll, kp)
	b.Draw = CalcKellyStake(float64(f.DrawPercent)/100, m.OddsDraw, bankroll, kp)
	b.Defeat = CalcKellyStake(float64(f.DefeatPercent)/100, m.OddsAway, bankroll, kp)

	b.WinStake, b.WinPotentialWin = b.Win.Stake, b.Win.PotentialWin
	b.DrawStake, b.DrawPotentialWin = b.Draw.Stake, b.Draw.PotentialWin
	b.DefeatStake, b.DefeatPotentialWin = b.Defeat.Stake, b.Defeat.PotentialWin

	for _, leg := range b.legs() {
		if leg.Stake > 0 {
			logger.Debug("Sized", leg.Outcome, "leg for match", m.ID, "stake", leg.Stake)
		}
	}
	return b
}
