package types

const (
	EventTypeIdentityCreated = "identity_created"
	EventTypeIdentityUpdated = "identity_updated"
	EventTypeIdentityRemoved = "identity_removed"
	EventTypeFieldUpdated    = "identity_field_updated"
	EventTypeFieldAdded      = "identity_field_added"
	EventTypeReviewAdded     = "identity_reviewed"
	EventTypeEvaluatorCreated = "evaluator_created"
	EventTypeVerifyRequested  = "verify_requested"
	EventTypeDataVerified     = "data_verified"

	AttributeKeyOwner        = "owner"
	AttributeKeyFieldName    = "field_name"
	AttributeKeyReviewer     = "reviewer"
	AttributeKeySubject      = "subject"
	AttributeKeyEvaluator    = "evaluator"
	AttributeKeyRequestor    = "requestor"
)
