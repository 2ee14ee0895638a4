package fees

import "strings"

// NormalizeUTR sanitizes a bank reference string. Empty values and the literal
// strings "undefined" and "null" (case sensitive, the footprint of upstream
// clients stringifying an absent value) become the empty string; anything else
// is trimmed of surrounding whitespace with internal characters kept intact.
// Idempotent, and invoked only inside RecordPayment so no write path can skip
// it.
func NormalizeUTR(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "undefined" || trimmed == "null" {
		return ""
	}
	return trimmed
}

// NormalizeCasteCategory maps the free-text caste category onto its canonical
// form. Unknown or absent values default to Open.
func NormalizeCasteCategory(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sc":
		return "SC"
	case "st":
		return "ST"
	case "obc":
		return "OBC"
	case "general", "open":
		return "Open"
	default:
		return "Open"
	}
}
