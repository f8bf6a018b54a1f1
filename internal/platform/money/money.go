package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round redondea montos a centavos.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Mul multiplica cantidad x precio y redondea a centavos (total_cost, loss_amount).
func Mul(qty, price decimal.Decimal) decimal.Decimal {
	return Round(qty.Mul(price))
}

// Format: símbolo + miles separados por coma + 2 decimales. Negativos con "-" adelante.
func Format(d decimal.Decimal, symbol string) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
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
