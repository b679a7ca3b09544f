package types

// Hand-written proto.Message/sdk.Msg stub methods, the same local-message
// fallback the currencies and identities modules use pending proper
// protobuf generation.

func (m *MsgCreatePayment) Reset()         { *m = MsgCreatePayment{} }
func (m *MsgCreatePayment) String() string { return "MsgCreatePayment" }
func (m *MsgCreatePayment) ProtoMessage()   {}

func (m *MsgCreatePaymentResponse) Reset()         { *m = MsgCreatePaymentResponse{} }
func (m *MsgCreatePaymentResponse) String() string { return "MsgCreatePaymentResponse" }
func (m *MsgCreatePaymentResponse) ProtoMessage()   {}

func (m *MsgAcceptPayment) Reset()         { *m = MsgAcceptPayment{} }
func (m *MsgAcceptPayment) String() string { return "MsgAcceptPayment" }
func (m *MsgAcceptPayment) ProtoMessage()   {}

func (m *MsgAcceptPaymentResponse) Reset()         { *m = MsgAcceptPaymentResponse{} }
func (m *MsgAcceptPaymentResponse) String() string { return "MsgAcceptPaymentResponse" }
func (m *MsgAcceptPaymentResponse) ProtoMessage()   {}

func (m *MsgRejectPayment) Reset()         { *m = MsgRejectPayment{} }
func (m *MsgRejectPayment) String() string { return "MsgRejectPayment" }
func (m *MsgRejectPayment) ProtoMessage()   {}

func (m *MsgRejectPaymentResponse) Reset()         { *m = MsgRejectPaymentResponse{} }
func (m *MsgRejectPaymentResponse) String() string { return "MsgRejectPaymentResponse" }
func (m *MsgRejectPaymentResponse) ProtoMessage()   {}

func (m *MsgCancelPayment) Reset()         { *m = MsgCancelPayment{} }
func (m *MsgCancelPayment) String() string { return "MsgCancelPayment" }
func (m *MsgCancelPayment) ProtoMessage()   {}

func (m *MsgCancelPaymentResponse) Reset()         { *m = MsgCancelPaymentResponse{} }
func (m *MsgCancelPaymentResponse) String() string { return "MsgCancelPaymentResponse" }
func (m *MsgCancelPaymentResponse) ProtoMessage()   {}

func (m *MsgFulfillPayment) Reset()         { *m = MsgFulfillPayment{} }
func (m *MsgFulfillPayment) String() string { return "MsgFulfillPayment" }
func (m *MsgFulfillPayment) ProtoMessage()   {}

func (m *MsgFulfillPaymentResponse) Reset()         { *m = MsgFulfillPaymentResponse{} }
func (m *MsgFulfillPaymentResponse) String() string { return "MsgFulfillPaymentResponse" }
func (m *MsgFulfillPaymentResponse) ProtoMessage()   {}

func (m *MsgCompletePayment) Reset()         { *m = MsgCompletePayment{} }
func (m *MsgCompletePayment) String() string { return "MsgCompletePayment" }
func (m *MsgCompletePayment) ProtoMessage()   {}

func (m *MsgCompletePaymentResponse) Reset()         { *m = MsgCompletePaymentResponse{} }
func (m *MsgCompletePaymentResponse) String() string { return "MsgCompletePaymentResponse" }
func (m *MsgCompletePaymentResponse) ProtoMessage()   {}
