package normalize

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizePhone formats a raw phone value by digit count:
//
//	10 digits            -> (AAA) EEE-SSSS
//	11 digits leading 1  -> country code stripped, then the 10-digit rule
//	more than 11 digits  -> +digits, unformatted (international)
//	exactly 7 digits     -> EEE-SSSS
//	anything else        -> the stripped digit string unchanged
//
// A leading + is detected but discarded before branching. That means an
// international number whose digits happen to start with 1 is formatted as
// a US number; kept for compatibility with existing output (see DESIGN.md).
func NormalizePhone(phone string) string {
	stripped := stripPhone(phone)
	digits := strings.TrimPrefix(stripped, "+")
	if digits == "" {
		return digits
	}

	switch {
	case len(digits) == 10:
		return formatTen(digits)
	case len(digits) == 11 && digits[0] == '1':
		return formatTen(digits[1:])
	case len(digits) > 11:
		return "+" + digits
	case len(digits) == 7:
		return fmt.Sprintf("%s-%s", digits[:3], digits[3:])
	default:
		return digits
	}
}

func formatTen(digits string) string {
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// stripPhone keeps digits and a leading +, dropping every separator and
// extension marker.
func stripPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		if unicode.IsDigit(r) || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone reports whether the value carries a plausible digit count.
func IsValidPhone(phone string) bool {
	count := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count >= 7 && count <= 15
}

// phoneDigits returns only the digits of a phone value; used for dedup keys.
func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
