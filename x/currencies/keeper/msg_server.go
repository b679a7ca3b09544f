package keeper

import (
	"context"
	"encoding/hex"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/currencies/types"
)

type msgServer struct {
	keeper Keeper
}

// NewMsgServerImpl returns an implementation of the currencies MsgServer.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{keeper: k}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) CreateCurrency(goCtx context.Context, msg *types.MsgCreateCurrency) (*types.MsgCreateCurrencyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	issuer, err := sdk.AccAddressFromBech32(msg.Issuer)
	if err != nil {
		return nil, types.ErrNotCurrencyIssuer.Wrap("invalid issuer address")
	}

	id, err := ms.keeper.CreateCurrency(ctx, issuer, types.CurrencyMetadata{
		Name:     msg.Name,
		Symbol:   msg.Symbol,
		Decimals: uint8(msg.Decimals),
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateCurrencyResponse{CurrencyHash: id.Hash[:]}, nil
}

func (ms msgServer) RemoveCurrency(goCtx context.Context, msg *types.MsgRemoveCurrency) (*types.MsgRemoveCurrencyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrNotCurrencyIssuer.Wrap("invalid caller address")
	}

	id, err := decodeCurrencyHash(msg.CurrencyHash)
	if err != nil {
		return nil, types.ErrCurrencyNotFound.Wrap(err.Error())
	}

	if err := ms.keeper.RemoveCurrency(ctx, caller, id); err != nil {
		return nil, err
	}
	return &types.MsgRemoveCurrencyResponse{}, nil
}

func (ms msgServer) AcceptCurrency(goCtx context.Context, msg *types.MsgAcceptCurrency) (*types.MsgAcceptCurrencyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	merchant, err := sdk.AccAddressFromBech32(msg.Merchant)
	if err != nil {
		return nil, types.ErrCurrencyNotFound.Wrap("invalid merchant address")
	}

	id, err := decodeCurrencyHash(msg.CurrencyHash)
	if err != nil {
		return nil, types.ErrCurrencyNotFound.Wrap(err.Error())
	}

	if err := ms.keeper.AcceptCurrency(ctx, merchant, id); err != nil {
		return nil, err
	}
	return &types.MsgAcceptCurrencyResponse{}, nil
}

func decodeCurrencyHash(raw []byte) (types.CurrencyID, error) {
	if len(raw) != 32 {
		return types.CurrencyID{}, hex.ErrLength
	}
	var h [32]byte
	copy(h[:], raw)
	return types.CurrencyID{Hash: h}, nil
}
