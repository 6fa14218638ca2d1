package csvio

import (
	"strconv"
	"strings"
)

// ParseMoney converts a locale-ambiguous numeric string into a float64.
// Tracker exports mix "1.234,56" and "1,234.56" styles, sometimes with
// currency symbols glued on. When both separators appear, the one occurring
// later in the string is the decimal separator and the other is stripped as
// a thousands separator. A lone comma is treated as a decimal separator.
// Anything unparseable normalizes to 0; noisy exports make a hard error here
// worse than a missing value.
func ParseMoney(val string) float64 {
	if val == "" || val == "-" || val == "0" {
		return 0
	}

	var b strings.Builder
	for _, ch := range val {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == ',' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	cleaned := b.String()

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case hasComma:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return num
}

// ParseCount extracts the integer value from a field that may carry
// formatting noise ("1,234 players"). Non-digit characters are dropped
// before parsing; failures normalize to 0.
func ParseCount(val string) int {
	var b strings.Builder
	for _, ch := range val {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
