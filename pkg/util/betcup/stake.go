package betcup

import (
	"math"
)

// Rounding methods for the stake round step
const (
	RoundNearest = "nearest"
	RoundUp      = "up"
	RoundDown    = "down"
)

// KellyParams tunes the Kelly staking calculation. Limits set to -1 mean
// "no limit", following the usual sentinel convention for optional numerics
type KellyParams struct {
	// Minimum and maximum allowed stake in absolute currency
	MinStake float64 `json:"minStake"`
	MaxStake float64 `json:"maxStake"`
	// AllowZero permits a zero stake for unprofitable bets. When false an
	// unprofitable bet falls back to MinStake, or fails when none is set
	AllowZero bool `json:"allowZero"`
	// CheckArbitrage rejects bets whose expected value is not positive
	CheckArbitrage bool `json:"checkArbitrage"`
	// Eps is the tolerance used in the expected value check
	Eps float64 `json:"eps"`
	// RoundStep snaps the final stake to a multiple of this step
	RoundStep float64 `json:"roundStep"`
	// RoundingMethod is one of nearest, up or down
	RoundingMethod string `json:"roundingMethod"`
	// RiskFactor scales the Kelly fraction down, 0 < RiskFactor <= 1
	RiskFactor float64 `json:"riskFactor"`
	// Commission accounts for bookmaker fees, 0 <= Commission < 1
	Commission float64 `json:"commission"`
	// MaxBankrollFraction caps the stake at this fraction of the bankroll
	MaxBankrollFraction float64 `json:"maxBankrollFraction"`
	// MaxProbability clamps the input probability to guard against
	// overconfident model estimates
	MaxProbability float64 `json:"maxProbability"`
}

// DefaultKellyParams returns the standard full-Kelly configuration with no
// stake limits
func DefaultKellyParams() KellyParams {
	return KellyParams{
		MinStake:            -1,
		MaxStake:            -1,
		AllowZero:           false,
		CheckArbitrage:      false,
		Eps:                 1e-6,
		RoundStep:           -1,
		RoundingMethod:      RoundNearest,
		RiskFactor:          1.0,
		Commission:          0.0,
		MaxBankrollFraction: -1,
		MaxProbability:      0.99,
	}
}

// KellyStake is the outcome of one staking calculation. Stake is -1 until a
// stake was actually computed, 0 means a deliberate decision not to bet
type KellyStake struct {
	Stake         float64  `json:"stake"`
	KellyFraction float64  `json:"kellyFraction"`
	ExpectedValue float64  `json:"expectedValue"`
	PotentialWin  float64  `json:"potentialWin"`
	Probability   float64  `json:"probability"`
	Odds          float64  `json:"odds"`
	Bankroll      float64  `json:"bankroll"`
	AppliedMin    bool     `json:"appliedMin"`
	AppliedMax    bool     `json:"appliedMax"`
	Rounded       bool     `json:"rounded"`
	Errors        []string `json:"errors,omitempty"`
}

// HasStake reports whether a positive stake was computed
func (ks *KellyStake) HasStake() bool {
	return ks.Stake > 0
}

// Valid reports whether the calculation went through without input errors
func (ks *KellyStake) Valid() bool {
	return len(ks.Errors) == 0
}

// CalcKellyStake sizes a bet by the Kelly criterion.
//
// probability is the model's estimate of the outcome, in (0, 1). odds is the
// decimal bookmaker price. bankroll is the absolute currency amount at the
// player's disposal. All input problems are collected into Errors rather
// than failing on the first one, so a caller can log the full picture.
// Any validation error leaves the stake uncomputed at -1; the formula only
// runs on fully valid input
func CalcKellyStake(probability, odds, bankroll float64, kp KellyParams) *KellyStake {
	ks := &KellyStake{
		Stake:       -1,
		Probability: probability,
		Odds:        odds,
		Bankroll:    bankroll,
	}

	if odds <= 0 {
		// No odds published for this outcome, nothing to size
		ks.Errors = append(ks.Errors, "no odds available")
		return ks
	}
	if probability <= 0 || probability >= 1 {
		ks.Errors = append(ks.Errors, "probability must be in (0, 1)")
	}
	if odds <= 1.0 {
		ks.Errors = append(ks.Errors, "odds must be greater than 1")
	}
	if bankroll <= 0 {
		ks.Errors = append(ks.Errors, "bankroll must be positive")
	}
	if kp.RiskFactor <= 0 || kp.RiskFactor > 1.0 {
		ks.Errors = append(ks.Errors, "risk factor must be in (0, 1]")
	}
	if kp.Commission < 0 || kp.Commission >= 1 {
		ks.Errors = append(ks.Errors, "commission must be in [0, 1)")
	}
	if kp.MinStake > 0 && kp.MaxStake > 0 && kp.MinStake > kp.MaxStake {
		ks.Errors = append(ks.Errors, "minimum stake exceeds maximum stake")
	}
	if !ks.Valid() {
		return ks
	}

	probability = math.Min(probability, kp.MaxProbability)

	ks.ExpectedValue = probability*odds - 1 + kp.Eps
	if kp.CheckArbitrage && ks.ExpectedValue <= 0 {
		switch {
		case kp.AllowZero:
			ks.Stake = 0
		case kp.MinStake > 0:
			ks.Stake = kp.MinStake
			ks.AppliedMin = true
			ks.PotentialWin = odds * ks.Stake
		default:
			ks.Errors = append(ks.Errors, "expected value is not positive")
		}
		return ks
	}

	// Kelly formula on the net odds after commission
	b := (odds - 1) * (1 - kp.Commission)
	q := 1 - probability
	ks.KellyFraction = (b*probability - q) / b

	if ks.KellyFraction <= 0 {
		switch {
		case kp.AllowZero:
			ks.Stake = 0
		case kp.MinStake > 0:
			ks.Stake = kp.MinStake
			ks.AppliedMin = true
			ks.PotentialWin = odds * ks.Stake
		default:
			ks.Errors = append(ks.Errors, "bet is unprofitable and no minimum stake is set")
		}
		return ks
	}

	stake := ks.KellyFraction * bankroll * kp.RiskFactor
	stake = math.Max(0, stake)

	if kp.MinStake > 0 && stake < kp.MinStake {
		stake = kp.MinStake
		ks.AppliedMin = true
	}
	if kp.MaxBankrollFraction > 0 {
		if limit := bankroll * kp.MaxBankrollFraction; stake > limit {
			stake = limit
			ks.AppliedMax = true
		}
	}
	if kp.MaxStake > 0 && stake > kp.MaxStake {
		stake = kp.MaxStake
		ks.AppliedMax = true
	}
	if kp.RoundStep > 0 {
		switch kp.RoundingMethod {
		case RoundUp:
			stake = math.Ceil(stake/kp.RoundStep) * kp.RoundStep
		case RoundDown:
			stake = math.Floor(stake/kp.RoundStep) * kp.RoundStep
		default:
			stake = math.Round(stake/kp.RoundStep) * kp.RoundStep
		}
		ks.Rounded = true
	}

	ks.Stake = stake
	ks.PotentialWin = odds * stake
	return ks
}
