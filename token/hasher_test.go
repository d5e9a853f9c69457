package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	// SHA3-256 of the empty string, fixed by the standard.
	assert.Equal(
		t,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		Hash(""),
	)

	digest := Hash("ya29.token")
	require.Len(t, digest, 64, "digest should be a hex-encoded 256-bit value")
	assert.Equal(t, digest, Hash("ya29.token"), "hashing must be deterministic")
	assert.NotEqual(t, digest, Hash("ya29.other"), "distinct tokens must not collide")
}
