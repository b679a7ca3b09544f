package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// Status is a resolver's lifecycle state.
type Status string

const (
	StatusCandidacy  Status = "Candidacy"
	StatusActive     Status = "Active"
	StatusTerminated Status = "Terminated"
)

// Delegation is one delegator's stake behind a resolver.
type Delegation struct {
	Delegator string      `json:"delegator"`
	Amount    sdkmath.Int `json:"amount"`
}

// Resolver is a stake-backed member of the resolver network.
type Resolver struct {
	Owner              string       `json:"owner"`
	ApplicationDigest  [32]byte     `json:"application_digest"`
	Status             Status       `json:"status"`
	SelfStake          sdkmath.Int  `json:"self_stake"`
	Delegations        []Delegation `json:"delegations"`
	TotalStake         sdkmath.Int  `json:"total_stake"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// Recompute derives TotalStake from SelfStake and the current delegation set.
func (r *Resolver) Recompute() {
	total := r.SelfStake
	for _, d := range r.Delegations {
		total = total.Add(d.Amount)
	}
	r.TotalStake = total
}

// PendingFund is a time-locked withdrawal awaiting release.
type PendingFund struct {
	Owner     string      `json:"owner"`
	Amount    sdkmath.Int `json:"amount"`
	ReleaseAt time.Time   `json:"release_at"`
	Seq       uint64      `json:"seq"`
}
