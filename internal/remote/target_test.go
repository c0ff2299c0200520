package remote

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeTarget_AbsoluteURLCanonicalForm(t *testing.T) {
	base := LocalBase(8080)

	cases := []struct {
		in   string
		want string
	}{
		{"http://example.com/app", "http://example.com/app"},
		{"https://example.com:8443/a?b=c", "https://example.com:8443/a?b=c"},
		{"http://example.com", "http://example.com"},
	}
	for _, tc := range cases {
		got, err := normalizeTarget(tc.in, base)
		if err != nil {
			t.Fatalf("normalizeTarget(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalizeTarget(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTarget_RelativeJoinsLocalBase(t *testing.T) {
	base := LocalBase(9223)

	cases := []struct {
		in   string
		want string
	}{
		{"index.html", "http://127.0.0.1:9223/index.html"},
		{"settings/general", "http://127.0.0.1:9223/settings/general"},
		{"/absolute/path", "http://127.0.0.1:9223/absolute/path"},
	}
	for _, tc := range cases {
		got, err := normalizeTarget(tc.in, base)
		if err != nil {
			t.Fatalf("normalizeTarget(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalizeTarget(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTarget_MalformedFailsWithInvalidArgument(t *testing.T) {
	base := LocalBase(8080)

	for _, in := range []string{"ht!tp://example.com", "http://bad host/", "://nothing"} {
		_, err := normalizeTarget(in, base)
		if err == nil {
			t.Fatalf("normalizeTarget(%q): expected error", in)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("normalizeTarget(%q) error = %v, want ErrInvalidArgument", in, err)
		}
		if !strings.Contains(err.Error(), in) {
			t.Fatalf("error %q does not name the original input %q", err, in)
		}
	}
}

func TestNormalizeTarget_EmptyPassesThrough(t *testing.T) {
	got, err := normalizeTarget("", LocalBase(8080))
	if err != nil {
		t.Fatalf("normalizeTarget(\"\") error: %v", err)
	}
	if got != "" {
		t.Fatalf("normalizeTarget(\"\") = %q, want \"\"", got)
	}
}
