package helpers

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckSharedSecret compares the entered admin password against the
// configured credential. When a bcrypt hash is configured it wins over the
// plaintext variant; the plaintext compare is constant-time. An empty
// configuration never matches.
func CheckSharedSecret(input, plain, bcryptHash string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if bcryptHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(bcryptHash), []byte(input)) == nil
	}
	if plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(input), []byte(plain)) == 1
}
