package types

import "fmt"

// Temporary stub implementations until proper protobuf generation is set up
// for this module, mirroring x/delegation/types/proto_stub.go.

func (m *MsgJoin) ProtoMessage()  {}
func (m *MsgJoin) Reset()         { *m = MsgJoin{} }
func (m *MsgJoin) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgJoinResponse) ProtoMessage()  {}
func (m *MsgJoinResponse) Reset()         { *m = MsgJoinResponse{} }
func (m *MsgJoinResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgDelegate) ProtoMessage()  {}
func (m *MsgDelegate) Reset()         { *m = MsgDelegate{} }
func (m *MsgDelegate) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgDelegateResponse) ProtoMessage()  {}
func (m *MsgDelegateResponse) Reset()         { *m = MsgDelegateResponse{} }
func (m *MsgDelegateResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgUndelegate) ProtoMessage()  {}
func (m *MsgUndelegate) Reset()         { *m = MsgUndelegate{} }
func (m *MsgUndelegate) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgUndelegateResponse) ProtoMessage()  {}
func (m *MsgUndelegateResponse) Reset()         { *m = MsgUndelegateResponse{} }
func (m *MsgUndelegateResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgResign) ProtoMessage()  {}
func (m *MsgResign) Reset()         { *m = MsgResign{} }
func (m *MsgResign) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgResignResponse) ProtoMessage()  {}
func (m *MsgResignResponse) Reset()         { *m = MsgResignResponse{} }
func (m *MsgResignResponse) String() string { return fmt.Sprintf("%+v", *m) }
