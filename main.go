package main

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/config"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/fechas"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/gateway"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/logging"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/metrics"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/observability"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/routes/auth"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/routes/dashboard"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/routes/missanciones"
)

// customErrorHandler renders error pages for web requests and JSON for
// everything under /api.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Página no encontrada - Sanciones ENAP",
		})
	case 502:
		return c.Status(502).Render("error", fiber.Map{
			"Title":        "Error - Sanciones ENAP",
			"ErrorCode":    "502",
			"ErrorTitle":   "Servidor no disponible",
			"ErrorMessage": err.Error(),
			"ShowRetry":    true,
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Error del servidor - Sanciones ENAP",
			"ErrorCode":    "500",
			"ErrorTitle":   "Error interno",
			"ErrorMessage": "Estamos teniendo problemas técnicos. Intenta más tarde.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Sanciones ENAP",
			"ErrorCode":    code,
			"ErrorTitle":   "Ocurrió un error",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuración inválida: ", err)
	}

	logger, cerrarLog, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatal("No se pudo iniciar el logger: ", err)
	}
	defer cerrarLog()

	cerrarSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env)
	if err != nil {
		logger.Warn("sentry deshabilitado", zap.Error(err))
	}
	defer cerrarSentry()

	gw := gateway.New(cfg.APIBaseURL, logger)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.AddFunc("fechaCorta", fechas.Corta)

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Routes
	auth.SetupAuthRoutes(app, gw, cfg, logger)
	dashboard.SetupDashboardRoutes(app, gw, logger)
	missanciones.SetupMisSancionesRoutes(app, gw, logger)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Página no encontrada")
	})

	logger.Info("servidor iniciado",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("backend", cfg.APIBaseURL))
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		logger.Fatal("servidor detenido", zap.Error(err))
	}
}
