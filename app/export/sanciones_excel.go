// Package export builds the downloadable sanction reports.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/fechas"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

var cabecera = []string{"Cadete", "Guardia", "Fecha", "Tipo", "Duración", "Estado", "Autoridad"}

// SancionesCompania builds a one-sheet workbook with every sanction of
// the company, one row per sanction, bold filtered header and
// approximate column widths.
func SancionesCompania(compania string, cadetes []models.CadeteSanciones) (*excelize.File, error) {
	f := excelize.NewFile()
	hoja := "Sanciones"
	if compania != "" {
		hoja = compania
		if len([]rune(hoja)) > 31 { // excel sheet name limit
			hoja = string([]rune(hoja)[:31])
		}
	}
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	for col, h := range cabecera {
		celda := colNombre(col+1) + "1"
		if err := f.SetCellStr(hoja, celda, h); err != nil {
			return nil, fmt.Errorf("celda %s: %w", celda, err)
		}
	}
	if negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(hoja, "A1", colNombre(len(cabecera))+"1", negrita)
	}
	_ = f.AutoFilter(hoja, "A1:"+colNombre(len(cabecera))+"1", nil)

	fila := 2
	for _, cd := range cadetes {
		for _, s := range cd.Sanciones {
			valores := []string{
				cd.Cadete,
				strconv.Itoa(cd.Guardia),
				fechas.Corta(s.Fecha),
				s.Tipo.Descripcion,
				s.Duracion.Descripcion,
				s.EstadoTexto(),
				s.Autoridad,
			}
			for col, v := range valores {
				celda := fmt.Sprintf("%s%d", colNombre(col+1), fila)
				if err := f.SetCellStr(hoja, celda, v); err != nil {
					return nil, fmt.Errorf("celda %s: %w", celda, err)
				}
			}
			fila++
		}
	}

	for col := 1; col <= len(cabecera); col++ {
		w := float64(len(cabecera[col-1])) * 1.2
		if w < 12 {
			w = 12
		}
		if col == 1 || col == len(cabecera) {
			w = 28 // names are the widest cells
		}
		_ = f.SetColWidth(hoja, colNombre(col), colNombre(col), w)
	}
	return f, nil
}

func colNombre(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
