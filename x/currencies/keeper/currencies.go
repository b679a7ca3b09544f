package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/currencies/types"
)

// CreateCurrency registers a new currency and reserves BondingAmount native
// from issuer (spec.md §4.1 create_currency).
func (k Keeper) CreateCurrency(ctx sdk.Context, issuer sdk.AccAddress, meta types.CurrencyMetadata) (types.CurrencyID, error) {
	meta.Issuer = issuer.String()
	id := types.HashCurrency(meta)

	store := ctx.KVStore(k.skey)
	key := types.BuildCurrencyKey(id)
	if store.Has(key) {
		return id, types.ErrCurrencyExisted
	}

	params := k.GetParams(ctx)
	if err := k.ledger.Reserve(ctx, types.NativeCurrencyID, issuer, params.BondingAmount); err != nil {
		return id, types.ErrInsufficientBalance.Wrap(err.Error())
	}

	bz, err := json.Marshal(meta)
	if err != nil {
		return id, err
	}
	store.Set(key, bz)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCurrencyCreated,
		sdk.NewAttribute(types.AttributeKeyCurrencyHash, hashHex(id.Hash)),
		sdk.NewAttribute(types.AttributeKeyIssuer, meta.Issuer),
		sdk.NewAttribute(types.AttributeKeyName, meta.Name),
		sdk.NewAttribute(types.AttributeKeySymbol, meta.Symbol),
	))

	k.Logger(ctx).Info("currency created", "hash", hashHex(id.Hash), "issuer", meta.Issuer)
	return id, nil
}

// GetCurrency looks up a registered currency's metadata.
func (k Keeper) GetCurrency(ctx sdk.Context, id types.CurrencyID) (types.CurrencyMetadata, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.BuildCurrencyKey(id))
	if bz == nil {
		return types.CurrencyMetadata{}, false
	}
	var meta types.CurrencyMetadata
	if err := json.Unmarshal(bz, &meta); err != nil {
		return types.CurrencyMetadata{}, false
	}
	return meta, true
}

// RemoveCurrency removes a currency's metadata and returns the bonding
// amount to its issuer (spec.md §4.1 remove_currency). Only the issuer may
// remove their own currency.
func (k Keeper) RemoveCurrency(ctx sdk.Context, caller sdk.AccAddress, id types.CurrencyID) error {
	meta, found := k.GetCurrency(ctx, id)
	if !found {
		return types.ErrCurrencyNotFound
	}
	if meta.Issuer != caller.String() {
		return types.ErrNotCurrencyIssuer
	}

	store := ctx.KVStore(k.skey)
	store.Delete(types.BuildCurrencyKey(id))

	params := k.GetParams(ctx)
	k.ledger.Unreserve(ctx, types.NativeCurrencyID, caller, params.BondingAmount)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCurrencyRemoved,
		sdk.NewAttribute(types.AttributeKeyCurrencyHash, hashHex(id.Hash)),
		sdk.NewAttribute(types.AttributeKeyIssuer, meta.Issuer),
	))

	k.Logger(ctx).Info("currency removed", "hash", hashHex(id.Hash))
	return nil
}

// AcceptCurrency appends a currency to merchant's acceptance list. Duplicates
// are permitted by design (spec.md §4.1): the list is a plain append, and
// membership is checked with a linear scan rather than de-duplicated at
// insert time.
func (k Keeper) AcceptCurrency(ctx sdk.Context, merchant sdk.AccAddress, id types.CurrencyID) error {
	if _, found := k.GetCurrency(ctx, id); !found {
		return types.ErrCurrencyNotFound
	}

	store := ctx.KVStore(k.skey)
	key := types.BuildAcceptanceKey(merchant.String())

	list := k.getAcceptanceList(store, key)
	list = append(list, id.Hash)
	k.setAcceptanceList(store, key, list)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCurrencyAccepted,
		sdk.NewAttribute(types.AttributeKeyCurrencyHash, hashHex(id.Hash)),
		sdk.NewAttribute(types.AttributeKeyMerchant, merchant.String()),
	))
	return nil
}

// IsCurrencyAccepted reports whether merchant accepts id. Native is
// implicitly accepted by everyone.
func (k Keeper) IsCurrencyAccepted(ctx sdk.Context, merchant sdk.AccAddress, id types.CurrencyID) bool {
	if id.Native {
		return true
	}
	store := ctx.KVStore(k.skey)
	list := k.getAcceptanceList(store, types.BuildAcceptanceKey(merchant.String()))
	for _, h := range list {
		if h == id.Hash {
			return true
		}
	}
	return false
}

func (k Keeper) getAcceptanceList(store storetypes.KVStore, key []byte) [][32]byte {
	bz := store.Get(key)
	if bz == nil {
		return nil
	}
	var list [][32]byte
	if err := json.Unmarshal(bz, &list); err != nil {
		return nil
	}
	return list
}

func (k Keeper) setAcceptanceList(store storetypes.KVStore, key []byte, list [][32]byte) {
	bz, err := json.Marshal(list)
	if err != nil {
		return
	}
	store.Set(key, bz)
}
