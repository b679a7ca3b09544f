// Package keeper implements the currencies registry keeper (spec.md §4.1).
package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/x/currencies/types"
)

// Keeper of the currencies store.
type Keeper struct {
	skey   storetypes.StoreKey
	ledger ledger.Keeper
}

// NewKeeper creates a new currencies keeper.
func NewKeeper(skey storetypes.StoreKey, ledgerKeeper ledger.Keeper) Keeper {
	return Keeper{skey: skey, ledger: ledgerKeeper}
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// SetParams sets the module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := types.ValidateParams(&params); err != nil {
		return err
	}
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(params)
	if err != nil {
		return err
	}
	store.Set(types.ParamsKey, bz)
	return nil
}

// GetParams returns the module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// ResolveDenom implements bankledger.DenomResolver: a registered currency's
// bank denom is deterministically derived from its content hash so no extra
// state is needed to map one to the other.
func (k Keeper) ResolveDenom(ctx sdk.Context, currency ledger.CurrencyID) (string, bool) {
	if currency.Native {
		return sdk.DefaultBondDenom, true
	}
	store := ctx.KVStore(k.skey)
	if !store.Has(types.BuildCurrencyKey(currency)) {
		return "", false
	}
	return "lrp/" + hashHex(currency.Hash), true
}

func hashHex(h [32]byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, 64)
	for _, b := range h {
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(out)
}
