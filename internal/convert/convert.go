// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert re-renders an integer typed in one radix into every
// supported radix.
//
// Parsing is strict: after trimming surrounding whitespace the text must be
// an optional sign, an optional literal prefix of the source base (0b, 0o,
// 0x, any case) and one or more digits valid in that base. Anything else,
// including embedded whitespace or trailing characters, is not a number.
// Magnitudes above MaxSafeInteger are rejected. Negative values keep their
// sign in every radix.
package convert

import (
	"strconv"
	"strings"

	"github.com/pdiddy/base-converter/pkg/types"
)

// MaxSafeInteger is the largest magnitude the converter accepts (2^53-1).
const MaxSafeInteger = 1<<53 - 1

// ConvertFrom parses text in radix from and formats the result in every
// supported base. It returns empty Values when text is blank or does not
// parse; it never panics and never reports an error.
func ConvertFrom(text string, from types.Base) types.Values {
	n, ok := Parse(text, from)
	if !ok {
		return types.Values{}
	}
	values := make(types.Values, len(types.Bases))
	for _, b := range types.Bases {
		values[b] = Format(n, b)
	}
	return values
}

// Parse interprets text as an integer in radix from. The boolean is false for
// blank input, invalid digits, an unsupported base, or a magnitude beyond
// MaxSafeInteger.
func Parse(text string, from types.Base) (int64, bool) {
	if !from.Valid() {
		return 0, false
	}
	s := strings.TrimSpace(text)

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if p := from.Prefix(); p != "" && len(s) > len(p) && strings.EqualFold(s[:len(p)], p) {
		s = s[len(p):]
	}
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if digitValue(s[i]) >= int(from) {
			return 0, false
		}
	}

	u, err := strconv.ParseUint(s, int(from), 64)
	if err != nil || u > MaxSafeInteger {
		return 0, false
	}
	n := int64(u)
	if neg {
		n = -n
	}
	return n, true
}

// Format renders n in radix b with uppercase hex digits and a leading minus
// sign for negative values.
func Format(n int64, b types.Base) string {
	return strings.ToUpper(strconv.FormatInt(n, int(b)))
}

// digitValue returns the numeric value of an ASCII digit or letter, or 36 for
// any other byte so that it is invalid in every base.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}
