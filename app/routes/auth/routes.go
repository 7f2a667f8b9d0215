package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/config"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/gateway"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/session"
)

var (
	client *gateway.Client
	conf   *config.Config
	logger *zap.Logger
)

func SetupAuthRoutes(app *fiber.App, gw *gateway.Client, cfg *config.Config, log *zap.Logger) {
	client, conf, logger = gw, cfg, log

	app.Get("/", LoginPage)
	app.Post("/login", LoginAPI)
	app.Get("/logout", Logout)
	app.Post("/logout", Logout)
}

func LoginPage(c *fiber.Ctx) error {
	// already logged in: skip the form
	if datos := session.DesdeCabecera(c.Get(fiber.HeaderCookie)); datos != nil {
		return redirigirPorRol(c, datos.Rol)
	}
	return c.Render("auth/login", fiber.Map{
		"Title": "Iniciar sesión - Sanciones ENAP",
	}, "")
}

func redirigirPorRol(c *fiber.Ctx, rol string) error {
	if session.EsElevado(rol) {
		return c.Redirect("/dashboard")
	}
	return c.Redirect("/mis-sanciones")
}

// SessionMiddleware decodes the session cookie into locals. Missing and
// malformed sessions are treated identically: redirect to the login
// page, or 401 JSON for API calls.
func SessionMiddleware(c *fiber.Ctx) error {
	datos := session.DesdeCabecera(c.Get(fiber.HeaderCookie))
	if datos == nil {
		if esAPI(c) {
			return c.Status(401).JSON(fiber.Map{"error": "Sesión no válida"})
		}
		return c.Redirect("/")
	}
	c.Locals("sesion", datos)
	return c.Next()
}

// RequireElevado gates admin pages. A regular user is sent to their own
// sanctions, never to an error page.
func RequireElevado(c *fiber.Ctx) error {
	datos := Sesion(c)
	if !session.EsElevado(datos.Rol) {
		if esAPI(c) {
			return c.Status(403).JSON(fiber.Map{"error": "Permisos insuficientes"})
		}
		return c.Redirect("/mis-sanciones")
	}
	return c.Next()
}

// RequireRegular keeps admins out of the self-service view.
func RequireRegular(c *fiber.Ctx) error {
	if session.EsElevado(Sesion(c).Rol) {
		return c.Redirect("/dashboard")
	}
	return c.Next()
}

// Sesion returns the decoded session set by SessionMiddleware.
func Sesion(c *fiber.Ctx) *session.Datos {
	return c.Locals("sesion").(*session.Datos)
}

func esAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
