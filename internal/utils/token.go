package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/roomies-app/roomies-api/internal/constants"
)

// GenerateVerificationToken generates the random hex token embedded in the
// email verification link.
func GenerateVerificationToken() (string, error) {
	bytes := make([]byte, constants.VerificationTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
