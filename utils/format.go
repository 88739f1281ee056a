package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as a naira string with thousands
// grouping, keeping whatever decimal precision the number already carries.
func FormatCurrency(n float64) string {
	return currencyPrinter.Sprintf("₦%v", number.Decimal(n))
}

// NumericCoerce parses v as a number, returning def when v is absent or
// not parseable. Catalog records carry prices as strings or numbers.
func NumericCoerce(v interface{}, def float64) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

// Truncate shortens s to at most max characters, breaking at the last space
// when one falls late enough, and appends an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	sliced := string(runes[:max])
	lastSpace := strings.LastIndex(sliced, " ")
	if lastSpace > 20 {
		sliced = sliced[:lastSpace]
	}
	return strings.TrimSpace(sliced) + "…"
}
