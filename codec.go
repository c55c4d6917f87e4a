// Package sectok implements the secret-token URI scheme from RFC 8959.
package sectok

import (
	"strings"
	"unicode/utf8"
)

// Scheme constants (RFC 8959 Section 2).
const (
	// Scheme is the URI scheme name.
	Scheme = "secret-token"

	// Prefix is the scheme name with the trailing colon, as it appears
	// at the start of every valid URI. Matching is case-sensitive.
	Prefix = "secret-token:"
)

const upperhex = "0123456789ABCDEF"

// allowedChars marks the ASCII characters that may appear unescaped in
// a token body: alphanumerics plus -._~!$&'()*+,;=:@ (the unreserved
// and sub-delim characters RFC 8959 permits). Every other byte must be
// percent-encoded. The table is shared by Encode and Decode so the two
// paths cannot disagree about the character set.
var allowedChars = buildAllowedChars()

func buildAllowedChars() (t [256]bool) {
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for _, c := range []byte("-._~!$&'()*+,;=:@") {
		t[c] = true
	}
	return t
}

// Encode encodes a secret as a secret-token URI.
//
// The secret's UTF-8 bytes are emitted verbatim where allowed and
// percent-encoded (uppercase hex) everywhere else, then the scheme
// prefix is prepended. Encode is total: every input yields a URI, and
// Decode recovers the original secret from it whenever the secret is
// non-empty. The empty secret encodes to the bare prefix, which is not
// a valid URI.
func Encode(secret string) string {
	var b strings.Builder
	b.Grow(len(Prefix) + len(secret))
	b.WriteString(Prefix)
	for i := 0; i < len(secret); i++ {
		c := secret[i]
		if allowedChars[c] {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}
	return b.String()
}

// Decode decodes a secret-token URI back into the secret it wraps.
//
// The second return value reports whether uri is a valid secret-token
// URI. Decode returns ("", false) when uri:
//
//   - does not start with Prefix (byte-exact, case-sensitive)
//   - has an empty body
//   - has a body containing a disallowed character or a '%' not
//     followed by two hex digits
//   - percent-decodes to bytes that are not valid UTF-8
//
// The body grammar is checked on the raw body before any byte is
// decoded; UTF-8 validity is checked on the decoded bytes afterwards.
// Both checks apply to every input.
func Decode(uri string) (string, bool) {
	if !strings.HasPrefix(uri, Prefix) {
		return "", false
	}
	body := uri[len(Prefix):]
	if body == "" {
		return "", false
	}

	decoded := make([]byte, 0, len(body))
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case allowedChars[c]:
			decoded = append(decoded, c)
			i++
		case c == '%':
			if i+3 > len(body) {
				return "", false
			}
			hi, ok1 := unhex(body[i+1])
			lo, ok2 := unhex(body[i+2])
			if !ok1 || !ok2 {
				return "", false
			}
			decoded = append(decoded, hi<<4|lo)
			i += 3
		default:
			return "", false
		}
	}

	if !utf8.Valid(decoded) {
		return "", false
	}
	return string(decoded), true
}

// DecodeBytes is Decode for a byte-sequence URI.
func DecodeBytes(uri []byte) (string, bool) {
	return Decode(string(uri))
}

// IsValid reports whether uri is a valid secret-token URI.
func IsValid(uri string) bool {
	_, ok := Decode(uri)
	return ok
}

// IsValidBytes is IsValid for a byte-sequence URI.
func IsValidBytes(uri []byte) bool {
	_, ok := DecodeBytes(uri)
	return ok
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
