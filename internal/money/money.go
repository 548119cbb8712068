// Package money represents Philippine peso amounts as integer centavos so
// cart arithmetic never goes through floating point.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amount is a peso amount in centavos.
type Amount int64

var printer = message.NewPrinter(language.MustParse("en-PH"))

// FromPesos converts a whole peso value.
func FromPesos(pesos int64) Amount {
	return Amount(pesos * 100)
}

// Parse reads a decimal peso string such as "1500" or "799.50".
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}
	whole, frac, _ := strings.Cut(s, ".")
	pesos, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", s, err)
	}
	if pesos < 0 {
		return 0, fmt.Errorf("money: negative amount %q", s)
	}
	cents := int64(0)
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("money: parse %q: %w", s, err)
		}
	}
	return Amount(pesos*100 + cents), nil
}

// Centavos returns the raw centavo value.
func (a Amount) Centavos() int64 {
	return int64(a)
}

// Pesos rounds to the nearest whole peso.
func (a Amount) Pesos() int64 {
	if a < 0 {
		return -(-a).Pesos()
	}
	return (int64(a) + 50) / 100
}

// Mul scales the amount by a quantity.
func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

// Add sums two amounts.
func (a Amount) Add(b Amount) Amount {
	return a + b
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// Display renders the amount for UI use: peso sign, grouped thousands and no
// decimal places. Internal computation never consumes this form.
func (a Amount) Display() string {
	return "₱" + printer.Sprint(number.Decimal(a.Pesos()))
}

func (a Amount) String() string {
	return a.Display()
}
