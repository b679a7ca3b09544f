package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// IdentitiesKeeper is the narrow slice of the identities module the resolver
// network depends on: whether an applicant holds an identity, its current
// credibility, and the ability to push credibility deltas back. Modeled on
// the teacher's expected-keeper pattern (x/delegation/keeper/keeper.go's
// BankKeeper) — defined by the consumer, not the provider.
type IdentitiesKeeper interface {
	HasIdentity(ctx sdk.Context, owner string) bool
	GetCredibility(ctx sdk.Context, owner string) (uint32, bool)
	IncreaseCredibility(ctx sdk.Context, owner string, delta uint32) error
	DecreaseCredibility(ctx sdk.Context, owner string, delta uint32) error
}
