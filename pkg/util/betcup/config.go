package betcup

import "fmt"

// BetcupConfig contains all configurable parameters that influence staking outcomes
// This centralizes all magic numbers and constants for easy adjustment
type BetcupConfig struct {
	// Asset and cache parameters
	AssetsPath string // The base directory of betcup assets
	CachePath  string // The location of cached downloaded pages
	DbPath     string // The location of the betcup sqlite database

	// === General Default vars ===
	Championships []int // the list of championship ids in which we're interested
	// ChampionshipPaths maps championship ids onto their betexplorer site paths
	ChampionshipPaths map[int]string

	// === STAKING PARAMETERS ===

	Bankroll float64 // Current bankroll in currency units (default: 1000)
	Kelly    KellyParams

	// === BACKTEST PARAMETERS ===

	// Matches in rounds <= CutoffRound build statistics only; later rounds are evaluated
	CutoffRound    int // Starting cutoff round for summaries (default: 1)
	BacktestRounds int // Number of cutoff rounds swept by RunBacktest (default: 31)
}

// DefaultBetcupConfig returns the default configuration with all standard values
func DefaultBetcupConfig() *BetcupConfig {
	assetsPath := "/tmp/.betcup/"
	config := &BetcupConfig{
		AssetsPath: assetsPath,
		CachePath:  assetsPath + "cache/",
		DbPath:     assetsPath + "betcup.db",

		Championships: []int{11202},
		ChampionshipPaths: map[int]string{
			11202: "football/russia/premier-league",
		},

		Bankroll: 1000,
		Kelly:    DefaultKellyParams(),

		CutoffRound:    1,
		BacktestRounds: 31,
	}
	return config
}

// Global configuration instance
var Config *BetcupConfig

func init() {
	Config = DefaultBetcupConfig()
}

// UpdateConfig allows updating the global configuration
func UpdateConfig(newConfig *BetcupConfig) {
	Config = newConfig
}

// ValidateConfig ensures all configuration values are within reasonable ranges
func ValidateConfig(config *BetcupConfig) error {
	if config.Bankroll <= 0 {
		return fmt.Errorf("Bankroll must be positive, got: %f", config.Bankroll)
	}

	if config.Kelly.RiskFactor <= 0 || config.Kelly.RiskFactor > 1 {
		return fmt.Errorf("Kelly.RiskFactor must be in (0, 1], got: %f", config.Kelly.RiskFactor)
	}

	if config.Kelly.Commission < 0 || config.Kelly.Commission >= 1 {
		return fmt.Errorf("Kelly.Commission must be in [0, 1), got: %f", config.Kelly.Commission)
	}

	if config.Kelly.MaxProbability <= 0 || config.Kelly.MaxProbability > 1 {
		return fmt.Errorf("Kelly.MaxProbability must be in (0, 1], got: %f", config.Kelly.MaxProbability)
	}

	if config.BacktestRounds < 1 {
		return fmt.Errorf("BacktestRounds must be at least 1, got: %d", config.BacktestRounds)
	}

	return nil
}

// GetBankroll returns the configured bankroll
func GetBankroll() float64 {
	return Config.Bankroll
}

// SetBankroll updates the configured bankroll
func SetBankroll(bankroll float64) {
	Config.Bankroll = bankroll
}
