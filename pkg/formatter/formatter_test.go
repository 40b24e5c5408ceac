package formatter

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		7:        "7",
		999:      "999",
		1000:     "1,000",
		12345:    "12,345",
		1234567:  "1,234,567",
		-1234:    "-1,234",
		-999:     "-999",
		10000000: "10,000,000",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumber_Int64(t *testing.T) {
	if got := FormatNumber(int64(9876543210)); got != "9,876,543,210" {
		t.Errorf("FormatNumber = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate kept = %q", got)
	}
	if got := Truncate("abcdef", 4); got != "abc…" {
		t.Errorf("Truncate = %q, want abc…", got)
	}
	if got := Truncate("ünïcödé", 3); got != "ün…" {
		t.Errorf("Truncate runes = %q", got)
	}
	if got := Truncate("abc", 0); got != "abc" {
		t.Errorf("Truncate with no limit = %q", got)
	}

	long := strings.Repeat("x", MaxMessageLength+100)
	if n := utf8.RuneCountInString(Truncate(long, MaxMessageLength)); n != MaxMessageLength {
		t.Errorf("truncated length = %d", n)
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	got := EscapeMarkdownV2("a_b*c.d!(e)")
	want := `a\_b\*c\.d\!\(e\)`
	if got != want {
		t.Errorf("EscapeMarkdownV2 = %q, want %q", got, want)
	}
	if got := EscapeMarkdownV2(`C:\tmp`); got != `C:\\tmp` {
		t.Errorf("backslash escape = %q", got)
	}
	if EscapeMarkdownV2("plain text") != "plain text" {
		t.Error("plain text must be unchanged")
	}
}
