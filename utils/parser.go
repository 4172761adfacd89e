package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsRegexp    = regexp.MustCompile(`[0-9]+`)
	rateRegexp      = regexp.MustCompile(`[\d.]+`)
	normalizeRegexp = regexp.MustCompile(`[^a-z0-9]`)
)

// ParseCurrency extracts a rupee amount from a formatted string such as
// "₹50,000", "Rs. 2,00,000" or a value with a corrupted currency glyph.
// Everything except digits is stripped; an empty result parses to 0.
func ParseCurrency(amount string) int64 {
	digits := strings.Join(digitsRegexp.FindAllString(amount, -1), "")
	if digits == "" {
		return 0
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseInterestRate extracts numeric bounds from a textual rate range such as
// "7.5% - 9.5% p.a.". A single rate yields equal min and max.
func ParseInterestRate(rateRange string) (min, max float64) {
	rates := rateRegexp.FindAllString(rateRange, -1)
	if len(rates) == 0 {
		return 0, 0
	}
	min, _ = strconv.ParseFloat(rates[0], 64)
	max = min
	if len(rates) > 1 {
		if parsed, err := strconv.ParseFloat(rates[1], 64); err == nil {
			max = parsed
		}
	}
	return min, max
}

// NormalizeKey lowercases a label and strips everything outside [a-z0-9] so
// that "Single Child", "single-child" and "SINGLE_CHILD" compare equal.
func NormalizeKey(label string) string {
	return normalizeRegexp.ReplaceAllString(strings.ToLower(label), "")
}

// ContainsNormalized reports whether any entry of the list equals the target
// after key normalization on both sides.
func ContainsNormalized(list []string, target string) bool {
	key := NormalizeKey(target)
	for _, entry := range list {
		if NormalizeKey(entry) == key {
			return true
		}
	}
	return false
}
