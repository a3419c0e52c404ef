// Package nameutil generates names for transient helper containers.
//
// Pulling an image runs a throwaway container; its name carries a random
// hexadecimal suffix so that concurrent or retried installs never collide
// on the runtime's container namespace.
package nameutil

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	// PullPrefix is the name prefix for pull helper containers.
	PullPrefix = "asl-pull-"

	// suffixBytes is the number of random bytes in the suffix (12 hex chars).
	suffixBytes = 6
)

// PullName returns a fresh name for a pull helper container.
func PullName() string {
	b := make([]byte, suffixBytes)
	if _, err := rand.Read(b); err != nil {
		// Fallback to a fixed suffix if random generation fails.
		// This should never happen in practice.
		return PullPrefix + "000000000000"
	}
	return PullPrefix + hex.EncodeToString(b)
}
