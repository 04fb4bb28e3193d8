package report

import (
	"strings"

	"scamwatch/pkg/domain"
)

// NormalizeIdentifier returns the canonical form of a scam identifier used
// for consolidation matching:
//   - trim surrounding whitespace and lower-case (emails and business names
//     are matched case-insensitively)
//   - phone numbers additionally drop separator characters (spaces, dashes,
//     dots and parentheses) so "+1 (555) 123-4567" and "+15551234567" fold
//     into the same aggregate; a leading + is kept
//
// The storage layer's unique index is on lower(identifier), so lower-casing
// here is belt and braces for values that skip this function.
func NormalizeIdentifier(scamType domain.ScamType, value string) string {
	v := strings.ToLower(strings.TrimSpace(value))

	if scamType == domain.ScamTypePhone {
		var b strings.Builder
		for i, r := range v {
			switch {
			case r >= '0' && r <= '9':
				b.WriteRune(r)
			case r == '+' && i == 0:
				b.WriteRune(r)
			case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
				// separator, drop
			default:
				b.WriteRune(r)
			}
		}
		v = b.String()
	}

	return v
}
