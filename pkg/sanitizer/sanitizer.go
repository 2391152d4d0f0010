package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reMultiSlash      = regexp.MustCompile(`/+`)
	reMultiUnderscore = regexp.MustCompile(`_+`)
)

// SanitizeTimezone tidies an IANA zone name sent by a browser. It does not
// check that the zone exists.
func SanitizeTimezone(input string) string {
	p := Pipeline{
		strings.TrimSpace,
		func(s string) string { return strings.ReplaceAll(s, " ", "_") },
		func(s string) string { return reMultiSlash.ReplaceAllString(s, "/") },
		func(s string) string { return reMultiUnderscore.ReplaceAllString(s, "_") },
		func(s string) string { return strings.Trim(s, "/") },
	}
	return p.Apply(input)
}
