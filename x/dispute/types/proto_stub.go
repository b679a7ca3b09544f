package types

// Hand-written proto.Message/sdk.Msg stub methods, the same local-message
// fallback the rest of the module tree uses pending proper protobuf
// generation.

func (m *MsgCreateDispute) Reset()         { *m = MsgCreateDispute{} }
func (m *MsgCreateDispute) String() string { return "MsgCreateDispute" }
func (m *MsgCreateDispute) ProtoMessage()   {}

func (m *MsgCreateDisputeResponse) Reset()         { *m = MsgCreateDisputeResponse{} }
func (m *MsgCreateDisputeResponse) String() string { return "MsgCreateDisputeResponse" }
func (m *MsgCreateDisputeResponse) ProtoMessage()   {}

func (m *MsgFightDispute) Reset()         { *m = MsgFightDispute{} }
func (m *MsgFightDispute) String() string { return "MsgFightDispute" }
func (m *MsgFightDispute) ProtoMessage()   {}

func (m *MsgFightDisputeResponse) Reset()         { *m = MsgFightDisputeResponse{} }
func (m *MsgFightDisputeResponse) String() string { return "MsgFightDisputeResponse" }
func (m *MsgFightDisputeResponse) ProtoMessage()   {}

func (m *MsgEscalateDispute) Reset()         { *m = MsgEscalateDispute{} }
func (m *MsgEscalateDispute) String() string { return "MsgEscalateDispute" }
func (m *MsgEscalateDispute) ProtoMessage()   {}

func (m *MsgEscalateDisputeResponse) Reset()         { *m = MsgEscalateDisputeResponse{} }
func (m *MsgEscalateDisputeResponse) String() string { return "MsgEscalateDisputeResponse" }
func (m *MsgEscalateDisputeResponse) ProtoMessage()   {}

func (m *MsgProposeOutcome) Reset()         { *m = MsgProposeOutcome{} }
func (m *MsgProposeOutcome) String() string { return "MsgProposeOutcome" }
func (m *MsgProposeOutcome) ProtoMessage()   {}

func (m *MsgProposeOutcomeResponse) Reset()         { *m = MsgProposeOutcomeResponse{} }
func (m *MsgProposeOutcomeResponse) String() string { return "MsgProposeOutcomeResponse" }
func (m *MsgProposeOutcomeResponse) ProtoMessage()   {}
