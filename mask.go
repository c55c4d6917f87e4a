// Package sectok implements the secret-token URI scheme from RFC 8959.
package sectok

import "strings"

// Mask masks a secret-token URI for safe logging.
//
// For a URI with a long enough body it keeps the prefix and the first
// and last three body characters. Example: secret-token:ABC...xyz.
// Input that does not carry the scheme prefix is fully redacted, since
// it may be a bare secret.
func Mask(uri string) string {
	if !strings.HasPrefix(uri, Prefix) {
		return "***REDACTED***"
	}
	body := uri[len(Prefix):]
	if len(body) > 6 {
		return Prefix + body[:3] + "..." + body[len(body)-3:]
	}
	return Prefix + "***"
}
