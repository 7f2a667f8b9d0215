package gateway

import (
	"context"
	"strconv"
	"strings"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

// catalog entries come as {descripcion, uid} everywhere
type refWire struct {
	Descripcion string `json:"descripcion"`
	UID         string `json:"uid"`
}

// accent palette rotated across company cards, same values the web UI
// has always shown
var colores = []string{"#1d4ed8", "#16a34a", "#f97316", "#dc2626", "#7c3aed"}

// Companias lists the squadron's companies. The backend only sends
// descripcion and uid; codigo (first three letters), turno and the
// accent color are derived here.
func (c *Client) Companias(ctx context.Context) ([]models.Compania, error) {
	var raw []refWire
	if err := c.get(ctx, "companias", "/companiaGet", &raw); err != nil {
		return nil, err
	}

	out := make([]models.Compania, 0, len(raw))
	for i, r := range raw {
		codigo := []rune(r.Descripcion)
		if len(codigo) > 3 {
			codigo = codigo[:3]
		}
		out = append(out, models.Compania{
			ID:     r.UID,
			Nombre: r.Descripcion,
			Codigo: strings.ToUpper(string(codigo)),
			Turno:  strconv.Itoa(i + 1),
			Color:  colores[i%len(colores)],
		})
	}
	return out, nil
}

// TiposSancion lists the sanction type catalog.
func (c *Client) TiposSancion(ctx context.Context) ([]models.Ref, error) {
	return c.catalogo(ctx, "tipos_sancion", "/tipo_sancionGet")
}

// Duraciones lists the duration catalog.
func (c *Client) Duraciones(ctx context.Context) ([]models.Ref, error) {
	return c.catalogo(ctx, "duraciones", "/duracionGet")
}

func (c *Client) catalogo(ctx context.Context, operacion, path string) ([]models.Ref, error) {
	var raw []refWire
	if err := c.get(ctx, operacion, path, &raw); err != nil {
		return nil, err
	}
	out := make([]models.Ref, 0, len(raw))
	for _, r := range raw {
		out = append(out, models.Ref{ID: r.UID, Descripcion: r.Descripcion})
	}
	return out, nil
}
