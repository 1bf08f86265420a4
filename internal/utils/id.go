// Package utils provides small helpers shared by the s3mstub emulator.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateID returns a 12-character hex identifier, e.g. "a1b2c3d4e5f6",
// used as the id of an emulated cluster.
func GenerateID() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
