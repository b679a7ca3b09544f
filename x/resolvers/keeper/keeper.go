// Package keeper implements the resolver network keeper (spec.md §4.3).
package keeper

import (
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/platform"
	"github.com/lrpchain/lrp/x/resolvers/types"
)

// Keeper of the resolvers store.
type Keeper struct {
	skey       storetypes.StoreKey
	ledger     ledger.Keeper
	identities types.IdentitiesKeeper
	random     platform.RandomSource
	offchain   platform.OffchainIndex
	metrics    platform.SweepMetrics
}

// WithMetrics attaches sweep observability gauges, wired in at the
// composition root. A Keeper with no metrics attached skips recording
// rather than panicking on nil gauges.
func (k Keeper) WithMetrics(m platform.SweepMetrics) Keeper {
	k.metrics = m
	return k
}

// NewKeeper creates a new resolvers keeper.
func NewKeeper(
	skey storetypes.StoreKey,
	ledgerKeeper ledger.Keeper,
	identitiesKeeper types.IdentitiesKeeper,
	random platform.RandomSource,
	offchain platform.OffchainIndex,
) Keeper {
	return Keeper{
		skey:       skey,
		ledger:     ledgerKeeper,
		identities: identitiesKeeper,
		random:     random,
		offchain:   offchain,
	}
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

func (k Keeper) nextPendingFundSeq(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.PendingFundSequenceKey)
	var seq uint64
	if bz != nil {
		seq = binary.BigEndian.Uint64(bz)
	}
	seq++
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], seq)
	store.Set(types.PendingFundSequenceKey, out[:])
	return seq
}
