package models

import "strings"

// Cadete is the canonical cadet record used across the app. The backend
// sends grado and rol as reference objects; the gateway flattens them to
// plain strings before anything else sees them.
type Cadete struct {
	UID       string `json:"uid"`
	Nombre1   string `json:"nombre1"`
	Nombre2   string `json:"nombre2,omitempty"`
	Apellido1 string `json:"apellido1"`
	Apellido2 string `json:"apellido2,omitempty"`
	CC        string `json:"cc"`
	Grado     string `json:"grado"`
	Rol       string `json:"rol,omitempty"`
	Guardia   int    `json:"guardia"`
}

// NombreCompleto joins the present name parts with single spaces.
func (c Cadete) NombreCompleto() string {
	partes := make([]string, 0, 4)
	for _, p := range []string{c.Nombre1, c.Nombre2, c.Apellido1, c.Apellido2} {
		if strings.TrimSpace(p) != "" {
			partes = append(partes, strings.TrimSpace(p))
		}
	}
	return strings.Join(partes, " ")
}
