package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const shareCodeBytes = 3

// GenerateShareCode returns a short random code for manual sharing:
// 3 random bytes, hex-encoded to 6 characters.
func GenerateShareCode() (string, error) {
	buf := make([]byte, shareCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
