package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/export"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/fechas"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/filtros"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/gateway"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/routes/auth"
	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/sanciones"
)

func GetCompaniasAPI(c *fiber.Ctx) error {
	companias, err := client.Companias(c.UserContext())
	if err != nil {
		logger.Warn("listar companias", zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudieron cargar las compañías"})
	}
	return c.JSON(fiber.Map{"companias": companias, "count": len(companias)})
}

// GetCadetesAPI serves the filtered roster of one company. The full
// roster comes from the cache (fetched once per company) and the filter
// conjunction is applied per request, so the table always reflects the
// current filter values.
func GetCadetesAPI(c *fiber.Ctx) error {
	companiaID := c.Params("id")

	// refresh=1 acompaña la primera petición tras una recarga completa
	// de la página; es el único camino que descarta la entrada cacheada
	if c.QueryBool("refresh") {
		roster.Invalidate(companiaID)
	}

	todos, err := roster.GetOrFetch(c.UserContext(), companiaID, func(ctx context.Context) ([]models.Cadete, error) {
		return client.CadetesDeCompania(ctx, companiaID)
	})
	if err != nil {
		logger.Warn("cargar cadetes", zap.String("compania", companiaID), zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudieron cargar los cadetes"})
	}

	f := filtros.CadeteFiltros{
		Nombre:  c.Query("nombre"),
		Grado:   c.Query("grado"),
		Rol:     c.Query("rol"),
		Guardia: c.Query("guardia"),
	}
	cadetes := filtros.FiltrarCadetes(todos, f)

	return c.JSON(fiber.Map{
		"cadetes":         cadetes,
		"count":           len(cadetes),
		"total_count":     len(todos),
		"opciones":        filtros.OpcionesDeCadetes(todos),
		"filtros_activos": !f.Vacios(),
	})
}

func GetSancionesCompaniaAPI(c *fiber.Ctx) error {
	companiaID := c.Params("id")
	grupos, err := client.SancionesDeCompania(c.UserContext(), companiaID)
	if err != nil {
		logger.Warn("sanciones de compania", zap.String("compania", companiaID), zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudieron cargar las sanciones"})
	}
	return c.JSON(fiber.Map{"cadetes": grupos, "count": len(grupos)})
}

func GetSancionesCadeteAPI(c *fiber.Ctx) error {
	cadeteID := c.Params("id")
	resumen, err := client.SancionesDeAlumno(c.UserContext(), cadeteID)
	if err != nil {
		logger.Warn("sanciones de cadete", zap.String("cadete", cadeteID), zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudieron cargar las sanciones"})
	}

	f := filtros.SancionFiltros{SoloActivas: c.QueryBool("solo_activas")}
	resumen.Sanciones = filtros.FiltrarSanciones(resumen.Sanciones, f)

	return c.JSON(resumen)
}

// GetOpcionesSancionAPI serves both catalogs plus, per type, the
// eligible duration ids, the unit label and the duration the form must
// fall back to when the current selection stops being eligible, so the
// form can correct itself the instant the type changes.
func GetOpcionesSancionAPI(c *fiber.Ctx) error {
	tipos, duraciones, err := cargarCatalogos(c.UserContext())
	if err != nil {
		logger.Warn("catálogos de sanción", zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudieron cargar los catálogos"})
	}

	type elegibilidad struct {
		Duraciones     []string `json:"duraciones"`
		Unidad         string   `json:"unidad"`
		Predeterminada string   `json:"predeterminada"`
	}
	elegibles := make(map[string]elegibilidad, len(tipos))
	for _, t := range tipos {
		ids := make([]string, 0, len(duraciones))
		for _, d := range sanciones.DuracionesElegibles(t, duraciones) {
			ids = append(ids, d.ID)
		}
		elegibles[t.ID] = elegibilidad{
			Duraciones:     ids,
			Unidad:         sanciones.EtiquetaUnidad(t),
			Predeterminada: sanciones.CorregirDuracion(t, models.Ref{}, duraciones).ID,
		}
	}

	return c.JSON(fiber.Map{
		"tipos":      tipos,
		"duraciones": duraciones,
		"elegibles":  elegibles,
	})
}

func CrearSancionAPI(c *fiber.Ctx) error {
	type CrearRequest struct {
		AlumnoID   string `json:"alumno_id" form:"alumno_id"`
		TipoID     string `json:"tipo_id" form:"tipo_id"`
		DuracionID string `json:"duracion_id" form:"duracion_id"`
		Fecha      string `json:"fecha" form:"fecha"`
	}

	var req CrearRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud no válida"})
	}
	if req.AlumnoID == "" || req.TipoID == "" || req.DuracionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}
	if strings.TrimSpace(req.Fecha) == "" {
		req.Fecha = fechas.HoyISO()
	}

	tipos, duraciones, err := cargarCatalogos(c.UserContext())
	if err != nil {
		logger.Warn("catálogos para crear sanción", zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudieron cargar los catálogos"})
	}

	tipo, ok := buscarRef(tipos, req.TipoID)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Tipo de sanción desconocido"})
	}
	duracion, ok := buscarRef(duraciones, req.DuracionID)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Duración desconocida"})
	}
	// invalid pairings never reach the backend
	if err := sanciones.ValidarPareja(tipo, duracion); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	datos := auth.Sesion(c)
	nueva := gateway.NuevaSancion{
		AlumnoID:    req.AlumnoID,
		AutoridadID: datos.UserID,
		TipoID:      tipo.ID,
		DuracionID:  duracion.ID,
		Fecha:       req.Fecha,
	}
	if err := client.CrearSancion(c.UserContext(), nueva); err != nil {
		logger.Warn("crear sanción", zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudo aplicar la sanción"})
	}

	return c.JSON(fiber.Map{"message": "Sanción aplicada"})
}

func ActualizarEstadoAPI(c *fiber.Ctx) error {
	type EstadoRequest struct {
		Estado bool `json:"estado" form:"estado"`
	}

	var req EstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud no válida"})
	}

	sancionID := c.Params("id")
	if err := client.ActualizarEstado(c.UserContext(), sancionID, req.Estado); err != nil {
		logger.Warn("actualizar estado", zap.String("sancion", sancionID), zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudo actualizar la sanción"})
	}

	return c.JSON(fiber.Map{"message": "Sanción actualizada", "estado": req.Estado})
}

// ExportSancionesAPI streams the company's sanction report as xlsx.
func ExportSancionesAPI(c *fiber.Ctx) error {
	companiaID := c.Params("id")
	ctx := c.UserContext()

	var (
		grupos    []models.CadeteSanciones
		companias []models.Compania
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		grupos, err = client.SancionesDeCompania(gctx, companiaID)
		return err
	})
	g.Go(func() error {
		var err error
		companias, err = client.Companias(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Warn("exportar sanciones", zap.String("compania", companiaID), zap.Error(err))
		return c.Status(502).JSON(fiber.Map{"error": "No se pudo generar el reporte"})
	}

	nombre, codigo := companiaID, "compania"
	for _, comp := range companias {
		if comp.ID == companiaID {
			nombre, codigo = comp.Nombre, strings.ToLower(comp.Codigo)
			break
		}
	}

	f, err := export.SancionesCompania(nombre, grupos)
	if err != nil {
		logger.Error("construir reporte", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo generar el reporte"})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("serializar reporte", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo generar el reporte"})
	}

	archivo := fmt.Sprintf("sanciones_%s_%s.xlsx", codigo, fechas.HoyISO())
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", archivo))
	return c.Send(buf.Bytes())
}

func cargarCatalogos(ctx context.Context) (tipos, duraciones []models.Ref, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		tipos, e = client.TiposSancion(gctx)
		return e
	})
	g.Go(func() error {
		var e error
		duraciones, e = client.Duraciones(gctx)
		return e
	})
	err = g.Wait()
	return tipos, duraciones, err
}

func buscarRef(refs []models.Ref, id string) (models.Ref, bool) {
	for _, r := range refs {
		if r.ID == id {
			return r, true
		}
	}
	return models.Ref{}, false
}
