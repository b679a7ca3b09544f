// Package keeper implements the payment engine keeper (spec.md §4.4).
package keeper

import (
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/platform"
	"github.com/lrpchain/lrp/x/payment/types"
)

// Keeper of the payment store.
type Keeper struct {
	skey      storetypes.StoreKey
	ledger    ledger.Keeper
	currency  types.CurrencyKeeper
	offchain  platform.OffchainIndex
}

// NewKeeper creates a new payment keeper.
func NewKeeper(
	skey storetypes.StoreKey,
	ledgerKeeper ledger.Keeper,
	currencyKeeper types.CurrencyKeeper,
	offchain platform.OffchainIndex,
) Keeper {
	return Keeper{
		skey:     skey,
		ledger:   ledgerKeeper,
		currency: currencyKeeper,
		offchain: offchain,
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

// SetLatestPaymentIDGenesis seeds the monotonic payment ID counter — used
// only during InitGenesis.
func (k Keeper) SetLatestPaymentIDGenesis(ctx sdk.Context, id uint64) {
	store := ctx.KVStore(k.skey)
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], id)
	store.Set(types.LatestPaymentIDKey, out[:])
}

// LatestPaymentID returns the current value of the monotonic payment ID
// counter.
func (k Keeper) LatestPaymentID(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.LatestPaymentIDKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// nextPaymentID returns the next strictly monotonic payment ID.
func (k Keeper) nextPaymentID(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.LatestPaymentIDKey)
	var id uint64
	if bz != nil {
		id = binary.BigEndian.Uint64(bz)
	}
	id++
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], id)
	store.Set(types.LatestPaymentIDKey, out[:])
	return id
}

func (k Keeper) nextSeq(ctx sdk.Context, counterKey []byte) uint64 {
	store := ctx.KVStore(k.skey)
	bz := store.Get(counterKey)
	var seq uint64
	if bz != nil {
		seq = binary.BigEndian.Uint64(bz)
	}
	seq++
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], seq)
	store.Set(counterKey, out[:])
	return seq
}
