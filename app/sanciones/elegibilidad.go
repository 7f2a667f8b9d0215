// Package sanciones holds the type/duration pairing rule for
// disciplinary sanctions: the DTE category is measured in days and only
// accepts the DIA duration, every other category is measured in hours
// and rejects DIA. The rule is bidirectional and never relaxed; both
// this client and the backend enforce it.
package sanciones

import (
	"errors"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

const (
	// TipoDTE is the only day-based sanction category.
	TipoDTE = "DTE"
	// DuracionDia is the sentinel duration reserved for DTE.
	DuracionDia = "DIA"
)

// ErrParejaInvalida rejects a create request whose type/duration pairing
// is outside the rule.
var ErrParejaInvalida = errors.New("la duración no es válida para el tipo de sanción")

// EsDTE reports whether the type is the day-based category.
func EsDTE(tipo models.Ref) bool {
	return tipo.Descripcion == TipoDTE
}

// EsElegible implements the pairing rule: DIA if and only if DTE.
func EsElegible(tipo, duracion models.Ref) bool {
	return EsDTE(tipo) == (duracion.Descripcion == DuracionDia)
}

// DuracionesElegibles returns the durations legally selectable for the
// given type, in catalog order.
func DuracionesElegibles(tipo models.Ref, todas []models.Ref) []models.Ref {
	out := make([]models.Ref, 0, len(todas))
	for _, d := range todas {
		if EsElegible(tipo, d) {
			out = append(out, d)
		}
	}
	return out
}

// EtiquetaUnidad is the unit shown next to the duration selector.
func EtiquetaUnidad(tipo models.Ref) string {
	if EsDTE(tipo) {
		return "días"
	}
	return "horas"
}

// CorregirDuracion re-validates a selected duration after a type change:
// the current selection is kept when still eligible, otherwise the first
// eligible duration takes its place (zero Ref when none exist). Callers
// must apply the correction before the next render so a stale invalid
// duration is never left selected.
func CorregirDuracion(tipo, seleccionada models.Ref, todas []models.Ref) models.Ref {
	if seleccionada.ID != "" && EsElegible(tipo, seleccionada) {
		return seleccionada
	}
	elegibles := DuracionesElegibles(tipo, todas)
	if len(elegibles) == 0 {
		return models.Ref{}
	}
	return elegibles[0]
}

// ValidarPareja blocks submission of an invalid pairing before any
// remote call is made.
func ValidarPareja(tipo, duracion models.Ref) error {
	if !EsElegible(tipo, duracion) {
		return ErrParejaInvalida
	}
	return nil
}
