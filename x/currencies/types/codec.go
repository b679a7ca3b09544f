package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/legacy"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc is the codec for the currencies module.
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)

	proto.RegisterType((*MsgCreateCurrency)(nil), "lrp.currencies.v1.MsgCreateCurrency")
	proto.RegisterType((*MsgCreateCurrencyResponse)(nil), "lrp.currencies.v1.MsgCreateCurrencyResponse")
	proto.RegisterType((*MsgRemoveCurrency)(nil), "lrp.currencies.v1.MsgRemoveCurrency")
	proto.RegisterType((*MsgRemoveCurrencyResponse)(nil), "lrp.currencies.v1.MsgRemoveCurrencyResponse")
	proto.RegisterType((*MsgAcceptCurrency)(nil), "lrp.currencies.v1.MsgAcceptCurrency")
	proto.RegisterType((*MsgAcceptCurrencyResponse)(nil), "lrp.currencies.v1.MsgAcceptCurrencyResponse")
}

// RegisterLegacyAminoCodec registers the currencies module's interfaces and
// concrete types on the provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgCreateCurrency{}, "lrp/currencies/MsgCreateCurrency")
	legacy.RegisterAminoMsg(cdc, &MsgRemoveCurrency{}, "lrp/currencies/MsgRemoveCurrency")
	legacy.RegisterAminoMsg(cdc, &MsgAcceptCurrency{}, "lrp/currencies/MsgAcceptCurrency")
}

// RegisterInterfaces registers the module's sdk.Msg implementations.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateCurrency{},
		&MsgRemoveCurrency{},
		&MsgAcceptCurrency{},
	)
}
