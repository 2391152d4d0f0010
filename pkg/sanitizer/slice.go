package sanitizer

import "strings"

// NormalizeList splits a comma separated value, normalizes each item and
// drops empties and case-insensitive duplicates, keeping first-seen order.
func NormalizeList(value string, normalizer func(string) string) string {
	seen := make(map[string]struct{})
	var out []string

	for _, item := range strings.Split(value, ",") {
		item = normalizer(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}

	return strings.Join(out, ", ")
}
