package currency

import (
	"strconv"
	"strings"
)

// Formatter renders amounts for display with a fixed currency prefix.
// Amounts are plain numbers in the shop's single configured currency;
// there is no exchange handling and no rounding beyond the shortest
// round-trip float representation.
type Formatter struct {
	symbol string
}

// NewFormatter builds a Formatter for the given display symbol.
func NewFormatter(symbol string) Formatter {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = "AED"
	}
	return Formatter{symbol: symbol}
}

// Symbol returns the configured currency symbol.
func (f Formatter) Symbol() string {
	return f.symbol
}

// Format renders an amount as "<symbol> <grouped amount>".
// The integer part is grouped with thousands separators; fractional
// digits are kept exactly as produced by the float conversion. Negative
// amounts keep their leading minus, no special casing.
func (f Formatter) Format(amount float64) string {
	return f.symbol + " " + GroupDigits(amount)
}

// GroupDigits converts an amount to its decimal string with comma
// thousands separators in the integer part.
func GroupDigits(amount float64) string {
	raw := strconv.FormatFloat(amount, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	intPart := raw
	fracPart := ""
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		intPart = raw[:dot]
		fracPart = raw[dot:]
	}

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	return sign + intPart + fracPart
}
