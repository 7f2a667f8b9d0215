// Package fechas formats the ISO dates the backend exchanges.
package fechas

import (
	"strings"
	"time"
)

// HoyISO is today's date as yyyy-mm-dd, the form the backend expects.
func HoyISO() string {
	return time.Now().Format("2006-01-02")
}

// Corta renders an ISO date (with or without time component) as
// dd/mm/yyyy. Unparseable input passes through untouched so a bad
// backend value never blanks a table cell.
func Corta(iso string) string {
	s := iso
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
