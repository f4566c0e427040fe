// Package phone canonicalizes phone numbers into the shape the WhatsApp
// Cloud API expects for Mexican recipients.
package phone

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var expected = regexp.MustCompile(`^52\d{10}$`)

var logger = zerolog.Nop()

// SetLogger installs the process logger. Normalize stays a plain value
// function; the only side effect is the out-of-pattern warning.
func SetLogger(l *zerolog.Logger) {
	if l != nil {
		logger = *l
	}
}

// Normalize strips every non-digit character and collapses the "521" mobile
// prefix WhatsApp reports for Mexican numbers down to the "52" country code.
// Out-of-pattern results are returned as-is with a warning; the API may still
// accept them.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "521") {
		cleaned = "52" + cleaned[3:]
	}

	if !expected.MatchString(cleaned) {
		logger.Warn().Str("raw", raw).Str("normalized", cleaned).
			Msg("phone: number does not match expected 52XXXXXXXXXX format")
	}

	return cleaned
}
