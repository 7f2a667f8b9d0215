package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

type autoridadWire struct {
	Nombre1   string `json:"nombre1"`
	Apellido1 string `json:"apellido1"`
	Apellido2 string `json:"apellido2"`
}

type sancionWire struct {
	UID       string         `json:"uid"`
	Fecha     string         `json:"fecha"`
	Estado    bool           `json:"estado"`
	Tipo      refObjWire     `json:"ID_tipo_sancion"`
	Duracion  refObjWire     `json:"ID_duracion_sancion"`
	Autoridad *autoridadWire `json:"ID_autoridad"`
}

func (w sancionWire) aModelo() models.Sancion {
	autoridad := ""
	if w.Autoridad != nil {
		partes := make([]string, 0, 3)
		for _, p := range []string{w.Autoridad.Nombre1, w.Autoridad.Apellido1, w.Autoridad.Apellido2} {
			if p != "" {
				partes = append(partes, p)
			}
		}
		autoridad = strings.Join(partes, " ")
	}
	return models.Sancion{
		UID:       w.UID,
		Fecha:     w.Fecha,
		Estado:    w.Estado,
		Tipo:      models.Ref{ID: w.Tipo.ID, Descripcion: w.Tipo.Descripcion},
		Duracion:  models.Ref{ID: w.Duracion.ID, Descripcion: w.Duracion.Descripcion},
		Autoridad: autoridad,
	}
}

// SancionesDeAlumno returns one cadet's sanction summary.
func (c *Client) SancionesDeAlumno(ctx context.Context, alumnoID string) (*models.ResumenAlumno, error) {
	var raw struct {
		Alumno         string        `json:"alumno"`
		Compania       string        `json:"compania"`
		Grado          string        `json:"grado"`
		Guardia        int           `json:"guardia"`
		TotalSanciones int           `json:"total_sanciones"`
		Sanciones      []sancionWire `json:"sanciones"`
	}
	if err := c.get(ctx, "sanciones_alumno", "/sanciones-cd/"+alumnoID, &raw); err != nil {
		return nil, err
	}

	resumen := &models.ResumenAlumno{
		Alumno:         raw.Alumno,
		Compania:       raw.Compania,
		Grado:          raw.Grado,
		Guardia:        raw.Guardia,
		TotalSanciones: raw.TotalSanciones,
		Sanciones:      make([]models.Sancion, 0, len(raw.Sanciones)),
	}
	for _, w := range raw.Sanciones {
		resumen.Sanciones = append(resumen.Sanciones, w.aModelo())
	}
	return resumen, nil
}

// SancionesDeCompania returns the sanctions of every cadet in a
// company, grouped per cadet.
func (c *Client) SancionesDeCompania(ctx context.Context, companiaID string) ([]models.CadeteSanciones, error) {
	var raw struct {
		Cadetes []struct {
			Cadete         string        `json:"cadete"`
			Guardia        int           `json:"guardia"`
			TotalSanciones int           `json:"total_sanciones"`
			Sanciones      []sancionWire `json:"sanciones"`
		} `json:"cadetes"`
	}
	if err := c.get(ctx, "sanciones_compania", "/sancionesCompanias/"+companiaID, &raw); err != nil {
		return nil, err
	}

	out := make([]models.CadeteSanciones, 0, len(raw.Cadetes))
	for _, cd := range raw.Cadetes {
		grupo := models.CadeteSanciones{
			Cadete:         cd.Cadete,
			Guardia:        cd.Guardia,
			TotalSanciones: cd.TotalSanciones,
			Sanciones:      make([]models.Sancion, 0, len(cd.Sanciones)),
		}
		for _, w := range cd.Sanciones {
			grupo.Sanciones = append(grupo.Sanciones, w.aModelo())
		}
		out = append(out, grupo)
	}
	return out, nil
}

// NuevaSancion is the create payload in canonical naming; the wire ID_x
// field names live only in CrearSancion.
type NuevaSancion struct {
	AlumnoID    string
	AutoridadID string
	TipoID      string
	DuracionID  string
	Fecha       string
}

// CrearSancion registers a sanction. Eligibility of the type/duration
// pair must be validated before calling; the backend enforces it too but
// a rejection here is already a logic error upstream.
func (c *Client) CrearSancion(ctx context.Context, n NuevaSancion) error {
	body := map[string]string{
		"ID_alumno":           n.AlumnoID,
		"ID_autoridad":        n.AutoridadID,
		"ID_tipo_sancion":     n.TipoID,
		"ID_duracion_sancion": n.DuracionID,
		"fecha":               n.Fecha,
	}
	return c.do(ctx, "crear_sancion", http.MethodPost, "/sancionesPost", body, nil)
}

// ActualizarEstado toggles a sanction between active and fulfilled.
func (c *Client) ActualizarEstado(ctx context.Context, sancionID string, estado bool) error {
	return c.do(ctx, "actualizar_estado", http.MethodPut, "/sancionesPut/"+sancionID,
		map[string]bool{"estado": estado}, nil)
}
