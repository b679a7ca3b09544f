package types

import (
	"context"

	"google.golang.org/grpc"
)

// MsgServer is the server API for the dispute module's Msg service.
type MsgServer interface {
	CreateDispute(context.Context, *MsgCreateDispute) (*MsgCreateDisputeResponse, error)
	FightDispute(context.Context, *MsgFightDispute) (*MsgFightDisputeResponse, error)
	EscalateDispute(context.Context, *MsgEscalateDispute) (*MsgEscalateDisputeResponse, error)
	ProposeOutcome(context.Context, *MsgProposeOutcome) (*MsgProposeOutcomeResponse, error)
}

// _Msg_serviceDesc_local is an intentionally empty ServiceDesc, the same
// no-codegen fallback as x/delegation/types/msg_server.go.
var _Msg_serviceDesc_local = grpc.ServiceDesc{
	ServiceName: "lrp.dispute.Msg",
	HandlerType: (*MsgServer)(nil),
}

// RegisterMsgServer registers srv with s.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc_local, srv)
}
