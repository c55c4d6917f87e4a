// Package sectok implements the secret-token URI scheme from RFC 8959.
//
// A secret-token URI wraps an opaque secret (an API key, a bearer
// token) in a fixed, greppable scheme so that leaked credentials can
// be recognized by tooling:
//
//	secret-token:E92FB7EB-D882-47A4-A265-A0B6135DC842%20foo
//
// URI Format:
//
//   - Prefix: secret-token: (fixed, lowercase, case-sensitive)
//   - Body: one or more characters, each either an allowed ASCII
//     character (alphanumerics and -._~!$&'()*+,;=:@) or a
//     percent-encoded byte %XX
//
// Encode and Decode are exact inverses for every non-empty secret.
// Decode reports invalid input through its second return value; it
// never panics and never returns an error, since malformed URIs are
// ordinary data rather than exceptional conditions. The four failure
// causes (missing prefix, empty body, malformed body, invalid UTF-8
// after percent-decoding) are deliberately collapsed into a single
// outcome.
//
// Generate mints a fresh random secret and returns it already wrapped
// as a secret-token URI. Mask redacts a URI for safe logging.
package sectok
