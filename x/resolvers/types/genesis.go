package types

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

// Params holds the spec.md §6 configuration constants relevant to the
// resolver network.
type Params struct {
	MinimumSelfStake      sdkmath.Int   `json:"minimum_self_stake"`
	ActivationStakeAmount sdkmath.Int   `json:"activation_stake_amount"`
	UndelegateTime        time.Duration `json:"undelegate_time"`
	RequiredCredibility   uint32        `json:"required_credibility"`
	CredibilityGain       uint32        `json:"credibility_gain"`
	CredibilityLoss       uint32        `json:"credibility_loss"`
}

// DefaultParams returns the module's default parameters.
func DefaultParams() Params {
	return Params{
		MinimumSelfStake:      sdkmath.NewInt(100_000),
		ActivationStakeAmount: sdkmath.NewInt(1_000_000),
		UndelegateTime:        7 * 24 * time.Hour,
		RequiredCredibility:   30,
		CredibilityGain:       5,
		CredibilityLoss:       10,
	}
}

// ValidateParams validates p.
func ValidateParams(p *Params) error {
	if p.MinimumSelfStake.IsNegative() {
		return fmt.Errorf("minimum self stake must be non-negative")
	}
	if p.ActivationStakeAmount.LT(p.MinimumSelfStake) {
		return fmt.Errorf("activation stake amount must be >= minimum self stake")
	}
	if p.UndelegateTime < 0 {
		return fmt.Errorf("undelegate time must be non-negative")
	}
	return nil
}

// GenesisState is the resolvers module's genesis state.
type GenesisState struct {
	Params       Params        `json:"params"`
	Resolvers    []Resolver    `json:"resolvers"`
	PendingFunds []PendingFund `json:"pending_funds"`
}

// DefaultGenesisState returns the default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate validates the genesis state.
func (gs *GenesisState) Validate() error {
	if err := ValidateParams(&gs.Params); err != nil {
		return err
	}
	seen := make(map[string]bool, len(gs.Resolvers))
	for _, r := range gs.Resolvers {
		if seen[r.Owner] {
			return fmt.Errorf("duplicate resolver owner %s in genesis", r.Owner)
		}
		seen[r.Owner] = true
	}
	return nil
}
