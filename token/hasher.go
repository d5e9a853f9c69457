// Package token hashes raw bearer credentials into the digest form stored
// at rest. Digest equality stands in for token equality, so raw session
// tokens are never persisted.
package token

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Hash returns the hex-encoded SHA3-256 digest of a raw bearer token.
func Hash(raw string) string {
	digest := sha3.Sum256([]byte(raw))
	return hex.EncodeToString(digest[:])
}
