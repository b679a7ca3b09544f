package types

const (
	EventTypeResolverJoined      = "resolver_joined"
	EventTypeResolverActivated   = "resolver_activated"
	EventTypeResolverDeactivated = "resolver_deactivated"
	EventTypeDelegated           = "resolver_delegated"
	EventTypeUndelegated         = "resolver_undelegated"
	EventTypeResigned            = "resolver_resigned"
	EventTypeTerminated          = "resolver_terminated"
	EventTypePendingFundReleased = "pending_fund_released"

	AttributeKeyResolver  = "resolver"
	AttributeKeyDelegator = "delegator"
	AttributeKeyAmount    = "amount"
	AttributeKeyOwner     = "owner"
)
