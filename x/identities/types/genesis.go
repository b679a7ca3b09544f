package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Params holds the configuration constants of spec.md §6 relevant to
// identities and evaluators.
type Params struct {
	InitialCredibility uint32       `json:"initial_credibility"`
	MaxCredibility     uint32       `json:"max_credibility"`
	EvaluatorBonding   sdkmath.Int  `json:"evaluator_bonding"`
}

// DefaultParams returns the module's default parameters.
func DefaultParams() Params {
	return Params{
		InitialCredibility: 50,
		MaxCredibility:     100,
		EvaluatorBonding:   sdkmath.NewInt(500_000),
	}
}

// ValidateParams validates p.
func ValidateParams(p *Params) error {
	if p.InitialCredibility > p.MaxCredibility {
		return fmt.Errorf("initial credibility %d exceeds max credibility %d", p.InitialCredibility, p.MaxCredibility)
	}
	if p.EvaluatorBonding.IsNegative() {
		return fmt.Errorf("evaluator bonding must be non-negative")
	}
	return nil
}

// GenesisState is the identities module's genesis state.
type GenesisState struct {
	Params     Params      `json:"params"`
	Identities []Identity  `json:"identities"`
	Evaluators []Evaluator `json:"evaluators"`
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
	seen := make(map[string]bool, len(gs.Identities))
	for _, id := range gs.Identities {
		if seen[id.Owner] {
			return fmt.Errorf("duplicate identity owner %s in genesis", id.Owner)
		}
		seen[id.Owner] = true
		if id.Credibility > gs.Params.MaxCredibility {
			return fmt.Errorf("identity %s credibility exceeds max", id.Owner)
		}
	}
	return nil
}
