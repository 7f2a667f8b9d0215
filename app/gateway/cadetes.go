package gateway

import (
	"context"
	"encoding/json"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

// nested references use _id, unlike the top-level uid
type refObjWire struct {
	ID          string `json:"_id"`
	Descripcion string `json:"descripcion"`
}

type cadeteWire struct {
	Nombre1   string      `json:"nombre1"`
	Nombre2   string      `json:"nombre2"`
	Apellido1 string      `json:"apellido1"`
	Apellido2 string      `json:"apellido2"`
	CC        json.Number `json:"cc"`
	Grado     refObjWire  `json:"grado"`
	Rol       *refObjWire `json:"rol"`
	Guardia   int         `json:"guardia"`
	UID       string      `json:"uid"`
}

// CadetesDeCompania lists a company's roster with grado and rol
// flattened to their descriptions.
func (c *Client) CadetesDeCompania(ctx context.Context, companiaID string) ([]models.Cadete, error) {
	var raw []cadeteWire
	if err := c.get(ctx, "cadetes_compania", "/cd-companias/"+companiaID, &raw); err != nil {
		return nil, err
	}

	out := make([]models.Cadete, 0, len(raw))
	for _, w := range raw {
		rol := ""
		if w.Rol != nil {
			rol = w.Rol.Descripcion
		}
		out = append(out, models.Cadete{
			UID:       w.UID,
			Nombre1:   w.Nombre1,
			Nombre2:   w.Nombre2,
			Apellido1: w.Apellido1,
			Apellido2: w.Apellido2,
			CC:        w.CC.String(),
			Grado:     w.Grado.Descripcion,
			Rol:       rol,
			Guardia:   w.Guardia,
		})
	}
	return out, nil
}
