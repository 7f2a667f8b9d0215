package filtros

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

// CadeteFiltros is the conjunction of roster filters. Empty values
// impose no constraint.
type CadeteFiltros struct {
	Nombre  string
	Grado   string
	Rol     string
	Guardia string
}

// Vacios reports whether no filter is set, so the UI can tell an empty
// roster apart from an over-constrained one.
func (f CadeteFiltros) Vacios() bool {
	return strings.TrimSpace(f.Nombre) == "" &&
		strings.TrimSpace(f.Grado) == "" &&
		strings.TrimSpace(f.Rol) == "" &&
		strings.TrimSpace(f.Guardia) == ""
}

// plegar lowers a name for matching and strips diacritics, so "pere"
// finds Pérez. The transform chain is stateful and built per call.
func plegar(s string) string {
	quitarAcentos := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// FiltrarCadetes keeps the cadets matching every non-empty filter,
// preserving the original order. Name matches are case- and
// accent-insensitive substrings over the full display name; grado and
// rol compare in canonical form; guardia compares the decimal string
// exactly.
func FiltrarCadetes(cadetes []models.Cadete, f CadeteFiltros) []models.Cadete {
	nombre := plegar(strings.TrimSpace(f.Nombre))
	grado := Normalizar(f.Grado)
	rol := Normalizar(f.Rol)
	guardia := strings.TrimSpace(f.Guardia)

	out := make([]models.Cadete, 0, len(cadetes))
	for _, c := range cadetes {
		if nombre != "" && !strings.Contains(plegar(c.NombreCompleto()), nombre) {
			continue
		}
		if grado != "" && Normalizar(c.Grado) != grado {
			continue
		}
		if rol != "" && Normalizar(c.Rol) != rol {
			continue
		}
		if guardia != "" && strconv.Itoa(c.Guardia) != guardia {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SancionFiltros holds the sanction-list filters.
type SancionFiltros struct {
	SoloActivas bool
}

// FiltrarSanciones drops non-active sanctions when SoloActivas is set;
// otherwise the list passes through unchanged.
func FiltrarSanciones(sanciones []models.Sancion, f SancionFiltros) []models.Sancion {
	if !f.SoloActivas {
		return sanciones
	}
	out := make([]models.Sancion, 0, len(sanciones))
	for _, s := range sanciones {
		if s.Estado {
			out = append(out, s)
		}
	}
	return out
}

// OpcionesRoster are the distinct values a roster offers for each
// dropdown, in first-seen order.
type OpcionesRoster struct {
	Grados   []string `json:"grados"`
	Roles    []string `json:"roles"`
	Guardias []string `json:"guardias"`
}

// OpcionesDeCadetes derives the dropdown option lists from a roster.
func OpcionesDeCadetes(cadetes []models.Cadete) OpcionesRoster {
	grados := make([]any, len(cadetes))
	roles := make([]any, len(cadetes))
	for i, c := range cadetes {
		grados[i] = c.Grado
		roles[i] = c.Rol
	}

	guardias := make([]string, 0, len(cadetes))
	vistos := make(map[string]struct{}, len(cadetes))
	for _, c := range cadetes {
		g := strconv.Itoa(c.Guardia)
		if _, ok := vistos[g]; ok {
			continue
		}
		vistos[g] = struct{}{}
		guardias = append(guardias, g)
	}

	return OpcionesRoster{
		Grados:   Opciones(grados),
		Roles:    Opciones(roles),
		Guardias: guardias,
	}
}
