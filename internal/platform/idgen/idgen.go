// Package idgen genera ids legibles con prefijo + sufijo numérico (ANM001, EMP014).
package idgen

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultWidth = 3

// MaxDigits acota el sufijo que se tiene en cuenta; uno más largo no entra en un int
// al sumarle uno, así que ese id se ignora.
const MaxDigits = 9

// Next devuelve prefix + (mayor sufijo existente + 1), con padding a width dígitos.
// Ids que no tienen el prefijo o cuyo sufijo no es numérico se ignoran.
func Next(prefix string, width int, existing []string) string {
	if width <= 0 {
		width = DefaultWidth
	}

	max := 0
	for _, id := range existing {
		n, ok := Suffix(prefix, id)
		if ok && n > max {
			max = n
		}
	}
	return Format(prefix, width, max+1)
}

// Suffix extrae el número de un id con el prefijo dado (como mucho MaxDigits dígitos).
func Suffix(prefix, id string) (int, bool) {
	id = strings.TrimSpace(id)
	if len(id) <= len(prefix) || !strings.EqualFold(id[:len(prefix)], prefix) {
		return 0, false
	}
	rest := id[len(prefix):]
	if len(rest) > MaxDigits {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func Format(prefix string, width, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// Normalize deja un id natural como se guarda: sin espacios y en mayúsculas.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
