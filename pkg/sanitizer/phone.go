package sanitizer

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is assumed for numbers typed without a country code.
const DefaultPhoneRegion = "US"

// StripPhone removes whitespace, dashes and parentheses.
func StripPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, phone)
}

// NormalizePhone returns the E.164 form of phone when it parses as a possible
// number, and the stripped input otherwise.
func NormalizePhone(phone string) string {
	stripped := StripPhone(phone)
	if stripped == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(stripped, DefaultPhoneRegion)
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return stripped
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
