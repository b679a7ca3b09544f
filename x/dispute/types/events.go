package types

// Event types and attribute keys for the dispute module's status
// transitions (spec.md §6).
const (
	EventTypeDisputeCreated   = "dispute_created"
	EventTypeDisputeFought    = "dispute_fought"
	EventTypeDisputeEscalated = "dispute_escalated"
	EventTypeOutcomeProposed  = "dispute_outcome_proposed"
	EventTypeDisputeResolved  = "dispute_resolved"

	AttributeKeyPaymentHash = "payment_hash"
	AttributeKeyCaller      = "caller"
	AttributeKeyResolver    = "resolver"
	AttributeKeyOutcome     = "outcome"
	AttributeKeyFee         = "fee"
	AttributeKeyEvidenceID  = "evidence_id"
)
