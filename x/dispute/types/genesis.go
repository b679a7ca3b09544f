package types

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

// Params holds the dispute module's tunable fees and deadlines (spec.md §6).
type Params struct {
	// DisputeFinalizingTime is how long a dispute counts down before
	// finalization, measured from its creation; a re-enqueued dispute keeps
	// its original expiry.
	DisputeFinalizingTime time.Duration `json:"dispute_finalizing_time"`

	// DisputeFee is the per-resolver base fee.
	DisputeFee sdkmath.Int `json:"dispute_fee"`

	// CredibilityGain/CredibilityLoss are the credibility deltas applied on
	// dispute resolution.
	CredibilityGain uint32 `json:"credibility_gain"`
	CredibilityLoss uint32 `json:"credibility_loss"`
}

// DefaultParams returns sane default dispute parameters.
func DefaultParams() Params {
	return Params{
		DisputeFinalizingTime: 3 * 24 * time.Hour,
		DisputeFee:            sdkmath.NewInt(10_000),
		CredibilityGain:       5,
		CredibilityLoss:       10,
	}
}

// ValidateParams validates p.
func ValidateParams(p *Params) error {
	if p.DisputeFinalizingTime <= 0 {
		return fmt.Errorf("dispute_finalizing_time must be positive")
	}
	if p.DisputeFee.IsNil() || !p.DisputeFee.IsPositive() {
		return fmt.Errorf("dispute_fee must be positive")
	}
	return nil
}

// GenesisState is the dispute module's genesis state.
type GenesisState struct {
	Params    Params    `json:"params"`
	Disputes  []Dispute `json:"disputes"`
}

// DefaultGenesisState returns the default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate validates the genesis state.
func (gs GenesisState) Validate() error {
	return ValidateParams(&gs.Params)
}
