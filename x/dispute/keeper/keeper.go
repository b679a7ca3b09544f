// Package keeper implements the dispute engine keeper (spec.md §4.5).
package keeper

import (
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/platform"
	"github.com/lrpchain/lrp/x/dispute/types"
)

// Keeper of the dispute store.
type Keeper struct {
	skey      storetypes.StoreKey
	ledger    ledger.Keeper
	payment   types.PaymentKeeper
	resolvers types.ResolverKeeper
	offchain  platform.OffchainIndex
	metrics   platform.SweepMetrics
}

// WithMetrics attaches sweep observability gauges, wired in at the
// composition root. A Keeper with no metrics attached skips recording
// rather than panicking on nil gauges.
func (k Keeper) WithMetrics(m platform.SweepMetrics) Keeper {
	k.metrics = m
	return k
}

// NewKeeper creates a new dispute keeper.
func NewKeeper(
	skey storetypes.StoreKey,
	ledgerKeeper ledger.Keeper,
	paymentKeeper types.PaymentKeeper,
	resolverKeeper types.ResolverKeeper,
	offchain platform.OffchainIndex,
) Keeper {
	return Keeper{
		skey:      skey,
		ledger:    ledgerKeeper,
		payment:   paymentKeeper,
		resolvers: resolverKeeper,
		offchain:  offchain,
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

func (k Keeper) nextFinalizingSeq(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.FinalizingQueueSequenceKey)
	var seq uint64
	if bz != nil {
		seq = binary.BigEndian.Uint64(bz)
	}
	seq++
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], seq)
	store.Set(types.FinalizingQueueSequenceKey, out[:])
	return seq
}

func (k Keeper) enqueueFinalizing(ctx sdk.Context, paymentHash [32]byte) {
	store := ctx.KVStore(k.skey)
	seq := k.nextFinalizingSeq(ctx)
	store.Set(types.BuildFinalizingQueueKey(seq, paymentHash), paymentHash[:])
}

func (k Keeper) removeFromFinalizingQueue(ctx sdk.Context, paymentHash [32]byte) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.FinalizingQueuePrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		if string(it.Value()) == string(paymentHash[:]) {
			store.Delete(it.Key())
			return
		}
	}
}
