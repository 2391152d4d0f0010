package locale

import (
	"strings"

	"leadg/pkg/sanitizer"

	"github.com/nyaruka/phonenumbers"
)

// InferCountryFromPhone returns the country of an international phone number,
// or nil when the number carries no country code or the country is not listed.
func InferCountryFromPhone(phone string) *Country {
	normalized := sanitizer.NormalizePhone(phone)
	if !strings.HasPrefix(normalized, "+") {
		return nil
	}

	parsed, err := phonenumbers.Parse(normalized, "")
	if err != nil {
		return nil
	}

	country, ok := Countries[phonenumbers.GetRegionCodeForNumber(parsed)]
	if !ok {
		return nil
	}
	return &country
}

// InferTimezoneFromPhone returns "" when no country can be inferred.
func InferTimezoneFromPhone(phone string) string {
	if country := InferCountryFromPhone(phone); country != nil {
		return country.DefaultTimezone
	}
	return ""
}
