package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders v rounded half away from zero to cents, with
// thousands separators: FormatMoney("$", -1234.565) is "-$1,234.57".
func FormatMoney(symbol string, v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	whole, cents, _ := strings.Cut(d.Abs().StringFixed(2), ".")

	out := symbol + groupThousands(whole) + "." + cents
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

// FormatSignedMoney is FormatMoney with an explicit plus sign for gains.
func FormatSignedMoney(symbol string, v float64) string {
	s := FormatMoney(symbol, v)
	if decimal.NewFromFloat(v).Round(2).IsPositive() {
		return "+" + s
	}
	return s
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders a value already expressed in percent.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatHours renders hours without trailing zeros: 4h, 2.5h.
func FormatHours(h float64) string {
	return decimal.NewFromFloat(h).Round(2).String() + "h"
}
