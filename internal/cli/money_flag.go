package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// moneyValue is a pflag.Value for amounts such as "1200", "$1,200.50" or
// "€75". Values are rounded to cents.
type moneyValue struct {
	amount decimal.Decimal
	set    bool
}

var _ pflag.Value = (*moneyValue)(nil)

func (m *moneyValue) String() string {
	if !m.set {
		return ""
	}
	return m.amount.StringFixed(2)
}

func (m *moneyValue) Set(s string) error {
	d, err := parseMoney(s)
	if err != nil {
		return err
	}
	m.amount = d
	m.set = true
	return nil
}

func (m *moneyValue) Type() string { return "amount" }

func (m *moneyValue) Float64() float64 {
	return m.amount.InexactFloat64()
}

func parseMoney(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	neg := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")
	raw = strings.TrimLeft(raw, "$€£¥ ")
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" || strings.ContainsAny(raw[:1], "+-") {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if neg {
		d = d.Neg()
	}
	return d.Round(2), nil
}
