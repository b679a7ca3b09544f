// Package beacon implements platform.RandomSource backed by the chain's own
// header hash, the composition root's stand-in for a CometBFT RANDAO/VRF
// beacon (SPEC_FULL.md's "MODULE: randomness / timestamp / offchain index").
// Validators agree on the header hash as part of consensus, so mixing a
// caller-supplied seed with it stays deterministic across the network.
package beacon

import (
	"crypto/sha256"
	"sync"
)

// Beacon holds the most recent block's header hash, refreshed once per
// block by the app's BeginBlocker. Random mixes a caller's seed with
// whatever hash is currently stored.
type Beacon struct {
	mu     sync.RWMutex
	hash   []byte
	height int64
}

// New returns an empty Beacon; SetHeader must be called at least once
// (from the composition root's BeginBlocker) before Random is meaningful.
func New() *Beacon {
	return &Beacon{}
}

// SetHeader records the current block's header hash and height.
func (b *Beacon) SetHeader(hash []byte, height int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hash = append([]byte(nil), hash...)
	b.height = height
}

// Random implements platform.RandomSource.
func (b *Beacon) Random(seed []byte) ([]byte, int64) {
	b.mu.RLock()
	hash, height := b.hash, b.height
	b.mu.RUnlock()

	h := sha256.New()
	h.Write(seed)
	h.Write(hash)
	return h.Sum(nil), height
}
