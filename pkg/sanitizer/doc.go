// Package sanitizer normalizes visitor input before it is validated and
// stored.
//
// Every function is idempotent. Invalid input is returned in a normalized but
// otherwise untouched form so the validator can reject it with a field error.
//
// Normalization includes:
//   - Phone numbers: separators stripped, E.164 when the number parses
//   - Emails: trimmed and lowercased
//   - Names and short fields: whitespace collapsed
//   - Messages: line breaks kept, control characters dropped
//   - Lists: comma separated values deduplicated case-insensitively
//   - Timezones: IANA names trimmed, duplicate separators collapsed
package sanitizer
