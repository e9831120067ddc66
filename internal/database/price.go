package database

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceSuffix marks a starting ("from") price in won.
const PriceSuffix = "원~"

var errNegativePrice = errors.New("price cannot be negative")

// FormatPrice renders a starting price as shown on the site, e.g. 50000 as
// "50,000원~". Fractional won are rounded away.
func FormatPrice(p decimal.Decimal) (string, error) {
	if p.IsNegative() {
		return "", errNegativePrice
	}

	digits := p.Round(0).StringFixed(0)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(PriceSuffix)
	return b.String(), nil
}
