package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateState returns a random state token for the OAuth flow. 16 bytes
// from crypto/rand gives 128 bits of entropy; base64url keeps it cookie- and
// query-safe.
func GenerateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
