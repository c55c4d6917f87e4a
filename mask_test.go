// Package sectok implements the secret-token URI scheme from RFC 8959.
package sectok

import (
	"strings"
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"long body", "secret-token:E92FB7EB-D882-47A4-A265-A0B6135DC842%20foo", "secret-token:E92...foo"},
		{"short body", "secret-token:hello", "secret-token:***"},
		{"boundary body", "secret-token:abcdefg", "secret-token:abc...efg"},
		{"empty body", "secret-token:", "secret-token:***"},
		{"bare secret", "hunter2", "***REDACTED***"},
		{"empty input", "", "***REDACTED***"},
		{"wrong case prefix", "SECRET-TOKEN:hello", "***REDACTED***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.uri); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}

func TestMask_NeverLeaksGeneratedBody(t *testing.T) {
	uri, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	masked := Mask(uri)
	body := uri[len(Prefix):]
	if strings.Contains(masked, body) {
		t.Errorf("Mask(%q) = %q contains the full body", uri, masked)
	}
}
