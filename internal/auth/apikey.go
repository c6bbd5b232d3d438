package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// APIKeyPrefix marks every API key plaintext.
	APIKeyPrefix = "sk_"

	apiKeyRandomBytes   = 32
	apiKeyDisplayLength = 8
)

// apiKeyBodyLength is the base64url length of the random part.
var apiKeyBodyLength = base64.RawURLEncoding.EncodedLen(apiKeyRandomBytes)

// GeneratedAPIKey is a freshly minted key. Plaintext is shown to the owner
// once and never stored.
type GeneratedAPIKey struct {
	Plaintext     string
	Hash          string
	DisplayPrefix string
}

// GenerateAPIKey mints "sk_" followed by 256 bits of randomness in base64url.
func GenerateAPIKey() (GeneratedAPIKey, error) {
	b := make([]byte, apiKeyRandomBytes)
	if _, err := rand.Read(b); err != nil {
		return GeneratedAPIKey{}, fmt.Errorf("generate random bytes: %w", err)
	}

	body := base64.RawURLEncoding.EncodeToString(b)
	plaintext := APIKeyPrefix + body

	return GeneratedAPIKey{
		Plaintext:     plaintext,
		Hash:          HashToken(plaintext),
		DisplayPrefix: APIKeyPrefix + body[:apiKeyDisplayLength],
	}, nil
}

// WellFormedAPIKey reports whether candidate has the shape of a minted key.
// It performs no storage lookup.
func WellFormedAPIKey(candidate string) bool {
	body, ok := strings.CutPrefix(candidate, APIKeyPrefix)
	if !ok || len(body) != apiKeyBodyLength {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(body)
	return err == nil && len(raw) == apiKeyRandomBytes
}
