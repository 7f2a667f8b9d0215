package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ErrCredenciales is the backend saying the cedula/password pair is
// wrong (400 or 401).
var ErrCredenciales = errors.New("cédula o contraseña incorrectas")

// Identidad is the canonical login result. The backend mixes
// cc/cedula/documento and ID_autoridad/ID_alumno naming; that drift is
// absorbed here.
type Identidad struct {
	Cedula      string
	Rol         string
	AutoridadID string
	AlumnoID    string
	Token       string
}

// Login authenticates against the backend. The cedula goes out as a
// JSON number, which is what the endpoint expects; callers validate it
// is numeric before getting here.
func (c *Client) Login(ctx context.Context, cedula, password string) (*Identidad, error) {
	body := struct {
		CC       json.Number `json:"cc"`
		Password string      `json:"password"`
	}{CC: json.Number(cedula), Password: password}

	var raw struct {
		CC          json.Number `json:"cc"`
		Cedula      json.Number `json:"cedula"`
		Documento   json.Number `json:"documento"`
		Rol         string      `json:"rol"`
		IDAutoridad string      `json:"ID_autoridad"`
		IDAlumno    string      `json:"ID_alumno"`
		Token       string      `json:"token"`
	}

	err := c.do(ctx, "login", http.MethodPost, "/login", body, &raw)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Status == http.StatusBadRequest || se.Status == http.StatusUnauthorized) {
			return nil, ErrCredenciales
		}
		return nil, err
	}

	ced := raw.CC.String()
	if ced == "" {
		ced = raw.Cedula.String()
	}
	if ced == "" {
		ced = raw.Documento.String()
	}
	if ced == "" {
		ced = cedula
	}

	return &Identidad{
		Cedula:      ced,
		Rol:         raw.Rol,
		AutoridadID: raw.IDAutoridad,
		AlumnoID:    raw.IDAlumno,
		Token:       raw.Token,
	}, nil
}
