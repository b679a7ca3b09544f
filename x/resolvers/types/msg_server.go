package types

import (
	"context"

	"google.golang.org/grpc"
)

// MsgServer is the server API for the resolvers module's Msg service.
type MsgServer interface {
	Join(context.Context, *MsgJoin) (*MsgJoinResponse, error)
	Delegate(context.Context, *MsgDelegate) (*MsgDelegateResponse, error)
	Undelegate(context.Context, *MsgUndelegate) (*MsgUndelegateResponse, error)
	Resign(context.Context, *MsgResign) (*MsgResignResponse, error)
}

var _Msg_serviceDesc_local = grpc.ServiceDesc{
	ServiceName: "lrp.resolvers.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams:     []grpc.StreamDesc{},
	Metadata:    "lrp/resolvers/v1/tx.proto",
}

// RegisterMsgServer registers srv on s under the resolvers Msg service.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc_local, srv)
}
