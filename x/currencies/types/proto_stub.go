// Package types contains proto.Message stub implementations for the
// currencies module.
//
// These are temporary stub implementations until proper protobuf generation
// is set up (the same documented fallback the teacher uses in
// x/delegation/types/proto_stub.go). They implement the proto.Message
// interface required by Cosmos SDK's sdk.Msg.
package types

import "fmt"

func (m *MsgCreateCurrency) ProtoMessage()  {}
func (m *MsgCreateCurrency) Reset()         { *m = MsgCreateCurrency{} }
func (m *MsgCreateCurrency) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgCreateCurrencyResponse) ProtoMessage()  {}
func (m *MsgCreateCurrencyResponse) Reset()         { *m = MsgCreateCurrencyResponse{} }
func (m *MsgCreateCurrencyResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgRemoveCurrency) ProtoMessage()  {}
func (m *MsgRemoveCurrency) Reset()         { *m = MsgRemoveCurrency{} }
func (m *MsgRemoveCurrency) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgRemoveCurrencyResponse) ProtoMessage()  {}
func (m *MsgRemoveCurrencyResponse) Reset()         { *m = MsgRemoveCurrencyResponse{} }
func (m *MsgRemoveCurrencyResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgAcceptCurrency) ProtoMessage()  {}
func (m *MsgAcceptCurrency) Reset()         { *m = MsgAcceptCurrency{} }
func (m *MsgAcceptCurrency) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgAcceptCurrencyResponse) ProtoMessage()  {}
func (m *MsgAcceptCurrencyResponse) Reset()         { *m = MsgAcceptCurrencyResponse{} }
func (m *MsgAcceptCurrencyResponse) String() string { return fmt.Sprintf("%+v", *m) }
