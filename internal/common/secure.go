package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// SessionSecretBytes is the entropy of a generated session secret.
	SessionSecretBytes = 32

	// MinSessionSecretLength is the shortest configured secret accepted
	// without a warning.
	MinSessionSecretLength = 16
)

// GenerateSessionSecret returns a random hex encoded secret for the session
// cookie store.
func GenerateSessionSecret() (string, error) {
	buf := make([]byte, SessionSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IsWeakSecret reports whether secret is shorter than MinSessionSecretLength
// or is one of the known placeholders.
func IsWeakSecret(secret string, placeholders ...string) bool {
	if len(secret) < MinSessionSecretLength {
		return true
	}
	return NewSet(placeholders...).Has(secret)
}
