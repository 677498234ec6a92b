package validate

import (
	"strings"
	"unicode/utf8"
)

// NonEmpty rejects blank input.
func NonEmpty() Validator {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return Reject("value cannot be empty")
		}
		return nil
	}
}

// Length bounds the rune length of the input. A zero bound is disabled.
func Length(min, max int) Validator {
	return func(value string) error {
		n := utf8.RuneCountInString(value)
		if min > 0 && n < min {
			return Rejectf("must be at least %d characters long", min)
		}
		if max > 0 && n > max {
			return Rejectf("must be at most %d characters long", max)
		}
		return nil
	}
}

// Username accepts identifiers of 3-32 characters. Strict mode limits the
// alphabet to ASCII letters, digits, '-' and '_'; relaxed mode allows
// Unicode letters and digits.
func Username(strict bool) Validator {
	re := usernameRelaxedPattern
	if strict {
		re = usernameStrictPattern
	}
	return Match(re, "invalid username: use 3-32 letters, digits, '-' or '_'")
}

// FullName accepts personal names of 3-64 characters: letters in any
// script, spaces, dots, hyphens and apostrophes.
func FullName() Validator {
	return Match(fullNamePattern, "invalid name: use 3-64 letters, spaces, '.', ''' or '-'")
}

// Email accepts addresses in the common RFC 5322 working subset.
func Email() Validator {
	return Match(emailPattern, "invalid email address")
}

// URL accepts http, https, ftp and file URLs with a dotted host.
func URL() Validator {
	return Match(urlPattern, "invalid URL")
}

// FilePath accepts absolute Unix paths and Windows drive paths.
func FilePath() Validator {
	return Match(filePathPattern, "invalid file path")
}

// Command accepts single-line command strings without shell control
// characters.
func Command() Validator {
	return Match(commandPattern, "invalid command: control characters are not allowed")
}

// MultiLine requires the value to span at least minLines lines.
// A minLines below 2 defaults to 2.
func MultiLine(minLines int) Validator {
	if minLines < 2 {
		minLines = 2
	}
	return func(value string) error {
		if strings.Count(value, "\n")+1 < minLines {
			return Rejectf("must contain at least %d lines", minLines)
		}
		return nil
	}
}

// Slug accepts URL-friendly identifiers: 3-64 lowercase letters, digits
// and hyphens.
func Slug() Validator {
	return Match(slugPattern, "invalid slug: use 3-64 lowercase letters, digits or '-'")
}

// OneOf accepts only the listed options, matched case-insensitively.
func OneOf(options ...string) Validator {
	return func(value string) error {
		for _, opt := range options {
			if strings.EqualFold(value, opt) {
				return nil
			}
		}
		return Rejectf("must be one of: %s", strings.Join(options, ", "))
	}
}
