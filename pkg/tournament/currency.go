package tournament

import "strings"

// Fixed conversion rates to USD. Updating the table is a configuration
// concern; the pipeline never fails on a missing code.
var conversionRates = map[string]float64{
	"USD": 1.0,
	"EUR": 1.08,
	"GBP": 1.27,
	"BRL": 0.18,
}

const (
	// Tournaments whose name carries this marker report money fields in an
	// inflated denomination that must be rescaled before USD conversion.
	// This is a data-quality patch for one operator, not a currency rule.
	zodiacMarker = "zodiac"

	// ZodiacDeflator rescales the five money fields of a marked tournament.
	ZodiacDeflator = 0.14

	// ZodiacCurrencyLabel replaces the reported currency on marked rows so
	// downstream views can tell adjusted figures from real USD.
	ZodiacCurrencyLabel = "USD (CNY ADJ)"
)

// ConversionRate returns the USD conversion rate for a currency code.
// The lookup is case-insensitive, an empty code means USD, and unknown
// codes default to 1.0 rather than erroring.
func ConversionRate(code string) float64 {
	if code == "" {
		return 1.0
	}
	if rate, ok := conversionRates[strings.ToUpper(code)]; ok {
		return rate
	}
	return 1.0
}

// IsZodiacAdjusted reports whether a tournament name triggers the
// deflation special case.
func IsZodiacAdjusted(name string) bool {
	return strings.Contains(strings.ToLower(name), zodiacMarker)
}
