package types

// Event types and attribute keys for the payment module's status
// transitions, one event per completed transition per spec.md §6.
const (
	EventTypePaymentCreated   = "payment_created"
	EventTypePaymentAccepted  = "payment_accepted"
	EventTypePaymentRejected  = "payment_rejected"
	EventTypePaymentCancelled = "payment_cancelled"
	EventTypePaymentFulfilled = "payment_fulfilled"
	EventTypePaymentCompleted = "payment_completed"
	EventTypePaymentDisputed  = "payment_disputed"
	EventTypePaymentExpired   = "payment_expired"

	AttributeKeyPaymentHash = "payment_hash"
	AttributeKeyPayer       = "payer"
	AttributeKeyPayee       = "payee"
	AttributeKeyAmount      = "amount"
)
