// Package keeper implements the identities module keeper (spec.md §4.2).
package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/platform"
	"github.com/lrpchain/lrp/x/identities/types"
)

// Keeper of the identities store.
type Keeper struct {
	skey    storetypes.StoreKey
	ledger  ledger.Keeper
	offchain platform.OffchainIndex
}

// NewKeeper creates a new identities keeper.
func NewKeeper(skey storetypes.StoreKey, ledgerKeeper ledger.Keeper, offchain platform.OffchainIndex) Keeper {
	return Keeper{skey: skey, ledger: ledgerKeeper, offchain: offchain}
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

// HasIdentity reports whether owner holds an identity record. Consumed by
// x/resolvers' join operation ("requires has_identity").
func (k Keeper) HasIdentity(ctx sdk.Context, owner string) bool {
	store := ctx.KVStore(k.skey)
	return store.Has(types.BuildIdentityKey(owner))
}

// GetCredibility returns owner's current credibility score. Consumed by
// x/resolvers' join/termination checks.
func (k Keeper) GetCredibility(ctx sdk.Context, owner string) (uint32, bool) {
	id, found := k.GetIdentity(ctx, owner)
	if !found {
		return 0, false
	}
	return id.Credibility, true
}
