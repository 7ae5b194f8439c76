package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// DefaultTokenLength is the byte length of session tokens; hex encoding
// doubles it on the wire.
const DefaultTokenLength = 32

// GenerateSecureToken returns length cryptographically random bytes as a
// hex string.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
