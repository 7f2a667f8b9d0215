// Package session encodes the identity cookie. The value is URL-safe
// base64 of a small JSON object, not signed: integrity rests on
// HttpOnly plus transport security, which matches what the deployed
// front end has always done.
package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is fixed; changing it logs every user out.
const CookieName = "session_arc"

const (
	RolSuperadmin = "superadmin"
	RolAdmin      = "admin"
)

// Datos is the identity carried by the session cookie.
type Datos struct {
	Cedula string `json:"cedula"`
	Rol    string `json:"rol,omitempty"`
	UserID string `json:"userId,omitempty"`
	Token  string `json:"token,omitempty"`
}

// EsElevado reports whether the role grants the admin dashboard.
func EsElevado(rol string) bool {
	r := strings.ToLower(strings.TrimSpace(rol))
	return r == RolSuperadmin || r == RolAdmin
}

// Codificar serializes the session into the opaque cookie value.
func Codificar(d Datos) string {
	b, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decodificar parses a cookie value back into session data. Any
// malformed input (bad base64, bad JSON, empty cedula) yields nil;
// callers treat that exactly like an absent session. The legacy
// two-field shape {cedula, idAutoridad} still decodes, with the
// authority id carried as UserID and no role.
func Decodificar(valor string) *Datos {
	if valor == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(valor)
	if err != nil {
		// padded variant writers exist too
		raw, err = base64.URLEncoding.DecodeString(valor)
		if err != nil {
			return nil
		}
	}

	var w struct {
		Cedula      string `json:"cedula"`
		Rol         string `json:"rol"`
		UserID      string `json:"userId"`
		Token       string `json:"token"`
		IDAutoridad string `json:"idAutoridad"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil
	}
	if w.Cedula == "" {
		return nil
	}

	d := &Datos{
		Cedula: w.Cedula,
		Rol:    strings.ToLower(strings.TrimSpace(w.Rol)),
		UserID: w.UserID,
		Token:  w.Token,
	}
	if d.UserID == "" {
		d.UserID = w.IDAutoridad
	}
	return d
}

// DesdeCabecera extracts the session from a raw Cookie header: split on
// ';', trim, match by name. nil when the cookie is absent or malformed.
func DesdeCabecera(cabecera string) *Datos {
	if cabecera == "" {
		return nil
	}
	for _, parte := range strings.Split(cabecera, ";") {
		parte = strings.TrimSpace(parte)
		if strings.HasPrefix(parte, CookieName+"=") {
			return Decodificar(parte[len(CookieName)+1:])
		}
	}
	return nil
}

// Cookie builds the login cookie: session-scoped (no explicit expiry),
// HttpOnly, SameSite=Lax, Path=/.
func Cookie(d Datos, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    Codificar(d),
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
	}
}

// CookieLimpiar expires the session cookie immediately.
func CookieLimpiar() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	}
}
