package missanciones

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/filtros"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/gateway"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/routes/auth"
)

var (
	client *gateway.Client
	logger *zap.Logger
)

func SetupMisSancionesRoutes(app *fiber.App, gw *gateway.Client, log *zap.Logger) {
	client, logger = gw, log

	app.Get("/mis-sanciones", auth.SessionMiddleware, auth.RequireRegular, MisSancionesPage)
}

// MisSancionesPage is the self-service view: a regular user sees only
// their own sanctions. A failed fetch keeps the page usable with an
// inline message in place of the table.
func MisSancionesPage(c *fiber.Ctx) error {
	datos := auth.Sesion(c)

	var resumen *models.ResumenAlumno
	errorCarga := ""
	if datos.UserID == "" {
		errorCarga = "No se encontraron sanciones asociadas a tu usuario."
	} else {
		r, err := client.SancionesDeAlumno(c.UserContext(), datos.UserID)
		if err != nil {
			logger.Warn("cargar mis sanciones", zap.String("alumno", datos.UserID), zap.Error(err))
			errorCarga = "No se pudieron cargar tus sanciones. Intenta de nuevo."
		} else {
			resumen = r
		}
	}

	soloActivas := c.QueryBool("solo_activas")
	if resumen != nil && soloActivas {
		resumen.Sanciones = filtros.FiltrarSanciones(resumen.Sanciones,
			filtros.SancionFiltros{SoloActivas: true})
	}

	return c.Render("missanciones/index", fiber.Map{
		"Title":       "Mis sanciones - Sanciones ENAP",
		"CurrentPage": "mis-sanciones",
		"Cedula":      datos.Cedula,
		"Rol":         datos.Rol,
		"Resumen":     resumen,
		"ErrorCarga":  errorCarga,
		"SoloActivas": soloActivas,
	})
}
