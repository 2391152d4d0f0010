package locale

type Country struct {
	Code            string // ISO 3166-1 alpha-2
	Name            string
	DefaultTimezone string // IANA zone used when the visitor gave none
}

// Countries covers the markets the booking form is advertised in. Countries
// spanning several zones map to their most populous one.
var Countries = map[string]Country{
	"US": {Code: "US", Name: "United States", DefaultTimezone: "America/New_York"},
	"CA": {Code: "CA", Name: "Canada", DefaultTimezone: "America/Toronto"},
	"GB": {Code: "GB", Name: "United Kingdom", DefaultTimezone: "Europe/London"},
	"IE": {Code: "IE", Name: "Ireland", DefaultTimezone: "Europe/Dublin"},
	"DE": {Code: "DE", Name: "Germany", DefaultTimezone: "Europe/Berlin"},
	"FR": {Code: "FR", Name: "France", DefaultTimezone: "Europe/Paris"},
	"NL": {Code: "NL", Name: "Netherlands", DefaultTimezone: "Europe/Amsterdam"},
	"IL": {Code: "IL", Name: "Israel", DefaultTimezone: "Asia/Jerusalem"},
	"AE": {Code: "AE", Name: "United Arab Emirates", DefaultTimezone: "Asia/Dubai"},
	"IN": {Code: "IN", Name: "India", DefaultTimezone: "Asia/Kolkata"},
	"PK": {Code: "PK", Name: "Pakistan", DefaultTimezone: "Asia/Karachi"},
	"BD": {Code: "BD", Name: "Bangladesh", DefaultTimezone: "Asia/Dhaka"},
	"NP": {Code: "NP", Name: "Nepal", DefaultTimezone: "Asia/Kathmandu"},
	"SG": {Code: "SG", Name: "Singapore", DefaultTimezone: "Asia/Singapore"},
	"AU": {Code: "AU", Name: "Australia", DefaultTimezone: "Australia/Sydney"},
	"NZ": {Code: "NZ", Name: "New Zealand", DefaultTimezone: "Pacific/Auckland"},
}
