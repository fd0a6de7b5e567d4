package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns a hex digest of the parts joined with a separator that cannot
// appear in them ambiguously. Used for cache keys and filesystem-safe IDs.
func Hash(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}
