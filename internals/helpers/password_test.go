package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckSharedSecretPlain(t *testing.T) {
	assert.True(t, CheckSharedSecret("letmein", "letmein", ""))
	assert.True(t, CheckSharedSecret("  letmein  ", "letmein", ""), "surrounding spaces are trimmed")
	assert.False(t, CheckSharedSecret("wrong", "letmein", ""))
	assert.False(t, CheckSharedSecret("", "letmein", ""))
	assert.False(t, CheckSharedSecret("anything", "", ""), "empty configuration never matches")
}

func TestCheckSharedSecretBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckSharedSecret("letmein", "", string(hash)))
	assert.False(t, CheckSharedSecret("wrong", "", string(hash)))

	// The hash wins over a configured plaintext.
	assert.False(t, CheckSharedSecret("plaintext", "plaintext", string(hash)))
}
