package types

import sdkmath "cosmossdk.io/math"

// Params holds the currencies module's configuration constants (spec.md §6).
type Params struct {
	// BondingAmount is the native amount reserved per registered currency.
	BondingAmount sdkmath.Int `json:"bonding_amount"`
}

// DefaultParams returns the default currencies module parameters.
func DefaultParams() Params {
	return Params{BondingAmount: sdkmath.NewInt(1_000_000)}
}

// ValidateParams checks that params are well-formed.
func ValidateParams(p *Params) error {
	if p.BondingAmount.IsNil() || p.BondingAmount.IsNegative() {
		return ErrInsufficientBalance.Wrap("bonding amount must be non-negative")
	}
	return nil
}

// GenesisState is the currencies module's genesis state.
type GenesisState struct {
	Params     Params             `json:"params"`
	Currencies []CurrencyMetadata `json:"currencies"`
}

// DefaultGenesisState returns the default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate performs basic genesis state validation.
func (gs *GenesisState) Validate() error {
	return ValidateParams(&gs.Params)
}
