package search

import (
	"strings"

	"github.com/hitekdb/deeplink/internal/types"
)

// validLeadingDigits is the valid leading-digit set for mobile numbers in
// the dataset's numbering plan.
const validLeadingDigits = "6789"

// ExtractAltNumber derives the traversal candidate from a record's
// alt_mobile field. It returns the normalized 10-digit number and true when
// the field holds a usable cross-reference, or "" and false otherwise.
//
// Values longer than 10 characters keep only their last 10, which strips
// country-code and formatting prefixes ("+91-9876543210" -> "9876543210").
func ExtractAltNumber(rec types.Record) (string, bool) {
	alt := strings.TrimSpace(rec.AltMobile)
	if types.IsSentinel(alt) {
		return "", false
	}

	if len(alt) > 10 {
		alt = alt[len(alt)-10:]
	}
	if len(alt) != 10 {
		return "", false
	}
	for _, r := range alt {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	if !strings.ContainsRune(validLeadingDigits, rune(alt[0])) {
		return "", false
	}
	return alt, true
}
