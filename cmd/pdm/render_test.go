package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateASCII(t *testing.T) {
	if got := truncate("short", 60); got != "short" {
		t.Fatalf("short strings must pass through, got %q", got)
	}
	long := strings.Repeat("a", 70)
	got := truncate(long, 60)
	if len(got) != 60 || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected truncation: %q (len %d)", got, len(got))
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("ü", 70)
	got := truncate(long, 60)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation broke UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 60 {
		t.Fatalf("expected 60 runes, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("ellipsis missing: %q", got)
	}
}
