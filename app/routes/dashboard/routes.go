package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/cache"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/gateway"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/observability"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/routes/auth"
)

var (
	client *gateway.Client
	logger *zap.Logger
	roster *cache.Roster
)

func SetupDashboardRoutes(app *fiber.App, gw *gateway.Client, log *zap.Logger) {
	client, logger = gw, log
	roster = cache.NewRoster()

	app.Get("/dashboard", auth.SessionMiddleware, auth.RequireElevado, DashboardPage)

	api := app.Group("/api")
	api.Use(auth.SessionMiddleware, auth.RequireElevado)
	api.Get("/companias", GetCompaniasAPI)
	api.Get("/companias/:id/cadetes", GetCadetesAPI)
	api.Get("/companias/:id/sanciones", GetSancionesCompaniaAPI)
	api.Get("/companias/:id/sanciones/export", ExportSancionesAPI)
	api.Get("/cadetes/:id/sanciones", GetSancionesCadeteAPI)
	api.Get("/sanciones/opciones", GetOpcionesSancionAPI)
	api.Post("/sanciones", CrearSancionAPI)
	api.Put("/sanciones/:id/estado", ActualizarEstadoAPI)
}

// DashboardPage loads companies and both sanction catalogs in parallel.
// A failure here fails the whole route: without that data the panel has
// nothing to show.
func DashboardPage(c *fiber.Ctx) error {
	datos := auth.Sesion(c)

	var (
		companias  []models.Compania
		tipos      []models.Ref
		duraciones []models.Ref
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		companias, err = client.Companias(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tipos, err = client.TiposSancion(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		duraciones, err = client.Duraciones(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("carga inicial del dashboard", zap.Error(err))
		observability.CaptureErr(err)
		return fiber.NewError(fiber.StatusBadGateway, "No se pudieron cargar los datos del panel")
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Panel de administración - Sanciones ENAP",
		"CurrentPage": "dashboard",
		"Cedula":      datos.Cedula,
		"Rol":         datos.Rol,
		"Companias":   companias,
		"Tipos":       tipos,
		"Duraciones":  duraciones,
	})
}
