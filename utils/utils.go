// File: utils/utils.go
// Author: momentics <momentics@gmail.com>
//
// Entropy and hex helpers shared by entity derivation and callers needing
// collision-safe temporary names.

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomFill fills b with cryptographically secure randomness.
func RandomFill(b []byte) error {
	if _, err := rand.Read(b); err != nil {
		return fmt.Errorf("random fill: %w", err)
	}
	return nil
}

// RandomString returns a cryptographically random hex string of 2*bytes
// characters, usable as a filename component.
func RandomString(bytes int) (string, error) {
	raw := make([]byte, bytes)
	if err := RandomFill(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// ToHex encodes in as lowercase hex.
func ToHex(in []byte) string { return hex.EncodeToString(in) }

// FromHex decodes a hex string, validating its contents.
func FromHex(in string) ([]byte, error) {
	out, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("from hex: %w", err)
	}
	return out, nil
}
