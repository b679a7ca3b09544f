package types

import (
	"context"

	grpc "google.golang.org/grpc"
)

// MsgServer defines the currencies Msg service using local (non-generated)
// types, mirroring x/delegation/types/msg_server.go.
type MsgServer interface {
	CreateCurrency(context.Context, *MsgCreateCurrency) (*MsgCreateCurrencyResponse, error)
	RemoveCurrency(context.Context, *MsgRemoveCurrency) (*MsgRemoveCurrencyResponse, error)
	AcceptCurrency(context.Context, *MsgAcceptCurrency) (*MsgAcceptCurrencyResponse, error)
}

// RegisterMsgServer registers the MsgServer implementation with a gRPC
// service registrar.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc_local, srv)
}

var _Msg_serviceDesc_local = grpc.ServiceDesc{
	ServiceName: "lrp.currencies.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams:     []grpc.StreamDesc{},
	Metadata:    "lrp/currencies/v1/tx.proto",
}
