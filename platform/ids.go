package platform

import "github.com/google/uuid"

// NewEvidenceID mints a human-facing correlation ID for an evidence or
// application blob — never used as a consensus-relevant key (those are
// always content hashes), only to give operators and the blob's own
// provider something stable to reference in logs and support tickets.
func NewEvidenceID() string {
	return uuid.NewString()
}
