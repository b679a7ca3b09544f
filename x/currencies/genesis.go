// Package currencies implements the currency registry module (spec.md §4.1).
package currencies

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/currencies/keeper"
	"github.com/lrpchain/lrp/x/currencies/types"
)

// InitGenesis initializes the currencies module's state from a genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(err)
	}
	for _, currency := range data.Currencies {
		if _, err := k.CreateCurrency(ctx, mustAddr(currency.Issuer), currency); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis exports the currencies module's state to a genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	var currencies []types.CurrencyMetadata
	k.WithCurrencies(ctx, func(m types.CurrencyMetadata) bool {
		currencies = append(currencies, m)
		return false
	})

	return &types.GenesisState{
		Params:     k.GetParams(ctx),
		Currencies: currencies,
	}
}

func mustAddr(bech32 string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(bech32)
	if err != nil {
		panic(err)
	}
	return addr
}
