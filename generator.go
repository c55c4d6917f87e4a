// Package sectok implements the secret-token URI scheme from RFC 8959.
package sectok

import (
	"crypto/rand"
	"encoding/base64"
)

// DefaultSecretLength is the default secret length in bytes.
const DefaultSecretLength = 32

// Generate mints a cryptographically secure random secret and returns
// it as a secret-token URI.
//
// The secret is Base64 RawURL encoded before wrapping, so the returned
// URI never contains percent-escapes. Use Decode to recover the secret
// text from the URI.
func Generate() (string, error) {
	return GenerateWithLength(DefaultSecretLength)
}

// GenerateWithLength mints a secret-token URI wrapping a random secret
// of the specified byte length.
func GenerateWithLength(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return Encode(base64.RawURLEncoding.EncodeToString(bytes)), nil
}
