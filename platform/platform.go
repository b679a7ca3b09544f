// Package platform collects the small external-collaborator interfaces the LRP
// module tree depends on but does not implement: the randomness beacon, the
// block timestamp source, and the offchain blob index. Each is modeled as an
// explicit interface type rather than a package-global, wired in at the
// composition root (see app/app.go), per the teacher's "avoid implicit
// globals" guidance.
package platform

import "time"

// RandomSource is the chain's randomness beacon. Random returns an opaque
// byte string deterministic in the seed and the chain state at the current
// block, plus the block height it was derived at. Callers must not treat the
// bytes as predictable ahead of the block that produced them.
type RandomSource interface {
	Random(seed []byte) (output []byte, height int64)
}

// Clock exposes the block timestamp. It is intentionally narrower than
// sdk.Context so keeper logic can be exercised without constructing a full
// SDK context in tests.
type Clock interface {
	Now() time.Time
}

// OffchainIndex persists an opaque blob addressed by its own hash. Failure to
// persist is non-fatal to on-chain state; the interface has no error return
// because the caller (the on-chain keeper) never blocks on it succeeding.
type OffchainIndex interface {
	Set(key, value []byte)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }
