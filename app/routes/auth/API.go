package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/gateway"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/metrics"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/observability"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/session"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Cedula   string `json:"cedula" form:"cedula"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorLogin(c, 400, "Solicitud no válida", "")
	}

	cedula := strings.TrimSpace(req.Cedula)
	if cedula == "" || req.Password == "" {
		return errorLogin(c, 400, "Cédula y contraseña son obligatorias", cedula)
	}
	if !esNumerica(cedula) {
		metrics.Logins.WithLabelValues("rechazado").Inc()
		return errorLogin(c, 401, "Cédula o contraseña incorrectas", cedula)
	}

	identidad, err := client.Login(c.UserContext(), cedula, req.Password)
	if err != nil {
		if errors.Is(err, gateway.ErrCredenciales) {
			metrics.Logins.WithLabelValues("rechazado").Inc()
			return errorLogin(c, 401, "Cédula o contraseña incorrectas", cedula)
		}
		logger.Error("login contra el backend", zap.Error(err))
		observability.CaptureErr(err)
		return errorLogin(c, 502, "No se pudo contactar al servidor. Intenta de nuevo.", cedula)
	}

	rol := strings.ToLower(strings.TrimSpace(identidad.Rol))
	userID := identidad.AutoridadID
	if userID == "" {
		userID = identidad.AlumnoID
	}

	datos := session.Datos{
		Cedula: identidad.Cedula,
		Rol:    rol,
		UserID: userID,
		Token:  identidad.Token,
	}
	c.Cookie(session.Cookie(datos, conf.CookieSecure))
	metrics.Logins.WithLabelValues("ok").Inc()

	return redirigirPorRol(c, rol)
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(session.CookieLimpiar())
	return c.Redirect("/")
}

// errorLogin re-renders the login form with an inline message, keeping
// the typed cedula so the user only retypes the password.
func errorLogin(c *fiber.Ctx, status int, mensaje, cedula string) error {
	return c.Status(status).Render("auth/login", fiber.Map{
		"Title":  "Iniciar sesión - Sanciones ENAP",
		"Error":  mensaje,
		"Cedula": cedula,
	}, "")
}

func esNumerica(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
