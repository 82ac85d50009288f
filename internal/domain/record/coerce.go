package record

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Coerciones tolerantes: un campo numérico ausente o malformado vale 0 en vez
// de rechazar el input. Es el comportamiento histórico del sistema y está
// asumido por los clientes.

// CoerceInt normaliza un valor arbitrario a entero, 0 si no es interpretable.
func CoerceInt(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			// texto tipo "12.7": tomar la parte entera como hace parseInt
			f, ferr := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if ferr != nil {
				return 0
			}
			return int64(f)
		}
		return i
	default:
		return 0
	}
}

// CoerceDecimal normaliza un valor arbitrario a decimal, 0 si no es interpretable.
func CoerceDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case decimal.Decimal:
		return n
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// CoerceString normaliza a string, vacío si el valor no es textual.
func CoerceString(v any) string {
	s, _ := v.(string)
	return s
}

// CoerceTime interpreta una fecha RFC 3339; zero time si no es interpretable.
func CoerceTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
