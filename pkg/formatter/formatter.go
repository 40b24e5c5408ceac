package formatter

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Telegram rejects messages longer than this many characters.
const MaxMessageLength = 4096

type integer interface {
	~int | ~int32 | ~int64
}

// FormatNumber groups the digits of n by thousands: 1234567 -> "1,234,567".
func FormatNumber[T integer](n T) string {
	return message.NewPrinter(language.English).Sprintf("%d", int64(n))
}

// Truncate cuts s to at most limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

const markdownV2Reserved = "_*[]()~`>#+-=|{}.!\\"

// EscapeMarkdownV2 escapes the characters Telegram reserves in MarkdownV2 text.
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownV2Reserved, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
