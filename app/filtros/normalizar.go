package filtros

import (
	"fmt"
	"strconv"
	"strings"
)

// Descriptor is implemented by reference values that carry a backend
// descripcion, e.g. models.Ref.
type Descriptor interface {
	GetDescripcion() string
}

// Normalizar canonicalizes a field that may arrive as a plain string, a
// {descripcion} reference or a number: trimmed and uppercased, empty
// string when there is nothing usable. Idempotent.
func Normalizar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToUpper(strings.TrimSpace(x))
	case Descriptor:
		return strings.ToUpper(strings.TrimSpace(x.GetDescripcion()))
	case int:
		if x == 0 {
			return ""
		}
		return strconv.Itoa(x)
	case fmt.Stringer:
		return strings.ToUpper(strings.TrimSpace(x.String()))
	default:
		return strings.ToUpper(strings.TrimSpace(fmt.Sprint(x)))
	}
}

// Opciones returns the distinct non-empty normalized values in
// first-seen order, ready for a filter dropdown.
func Opciones(valores []any) []string {
	vistos := make(map[string]struct{}, len(valores))
	out := make([]string, 0, len(valores))
	for _, v := range valores {
		n := Normalizar(v)
		if n == "" {
			continue
		}
		if _, ok := vistos[n]; ok {
			continue
		}
		vistos[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
