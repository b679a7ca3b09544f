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

	// ModuleCdc is the codec for the resolvers module.
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)

	proto.RegisterType((*MsgJoin)(nil), "lrp.resolvers.v1.MsgJoin")
	proto.RegisterType((*MsgJoinResponse)(nil), "lrp.resolvers.v1.MsgJoinResponse")
	proto.RegisterType((*MsgDelegate)(nil), "lrp.resolvers.v1.MsgDelegate")
	proto.RegisterType((*MsgDelegateResponse)(nil), "lrp.resolvers.v1.MsgDelegateResponse")
	proto.RegisterType((*MsgUndelegate)(nil), "lrp.resolvers.v1.MsgUndelegate")
	proto.RegisterType((*MsgUndelegateResponse)(nil), "lrp.resolvers.v1.MsgUndelegateResponse")
	proto.RegisterType((*MsgResign)(nil), "lrp.resolvers.v1.MsgResign")
	proto.RegisterType((*MsgResignResponse)(nil), "lrp.resolvers.v1.MsgResignResponse")
}

// RegisterLegacyAminoCodec registers the resolvers module's messages on cdc.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgJoin{}, "lrp/resolvers/MsgJoin")
	legacy.RegisterAminoMsg(cdc, &MsgDelegate{}, "lrp/resolvers/MsgDelegate")
	legacy.RegisterAminoMsg(cdc, &MsgUndelegate{}, "lrp/resolvers/MsgUndelegate")
	legacy.RegisterAminoMsg(cdc, &MsgResign{}, "lrp/resolvers/MsgResign")
}

// RegisterInterfaces registers the module's sdk.Msg implementations.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgJoin{},
		&MsgDelegate{},
		&MsgUndelegate{},
		&MsgResign{},
	)
}
