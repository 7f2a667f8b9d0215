package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func servidor(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, zap.NewNop())
}

func TestCompaniasDerivaPresentacion(t *testing.T) {
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/companiaGet", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`[
			{"descripcion":"Alfa","uid":"comp1"},
			{"descripcion":"Bravo","uid":"comp2"}
		]`))
	})

	companias, err := cli.Companias(context.Background())
	require.NoError(t, err)
	require.Len(t, companias, 2)

	assert.Equal(t, "comp1", companias[0].ID)
	assert.Equal(t, "Alfa", companias[0].Nombre)
	assert.Equal(t, "ALF", companias[0].Codigo)
	assert.Equal(t, "1", companias[0].Turno)
	assert.Equal(t, "#1d4ed8", companias[0].Color)
	assert.Equal(t, "#16a34a", companias[1].Color)
}

func TestCadetesAplanaReferencias(t *testing.T) {
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cd-companias/comp1", r.URL.Path)
		_, _ = w.Write([]byte(`[{
			"nombre1":"Juan","apellido1":"Pérez","cc":1234567890,
			"grado":{"_id":"g1","descripcion":"CADETE 3"},
			"rol":{"_id":"r1","descripcion":"Alumno"},
			"guardia":2,"uid":"cad1"
		},{
			"nombre1":"Ana","apellido1":"Gómez","cc":55,
			"grado":{"_id":"g2","descripcion":"CADETE 1"},
			"guardia":1,"uid":"cad2"
		}]`))
	})

	cadetes, err := cli.CadetesDeCompania(context.Background(), "comp1")
	require.NoError(t, err)
	require.Len(t, cadetes, 2)

	assert.Equal(t, "1234567890", cadetes[0].CC)
	assert.Equal(t, "CADETE 3", cadetes[0].Grado)
	assert.Equal(t, "Alumno", cadetes[0].Rol)
	assert.Empty(t, cadetes[1].Rol, "rol ausente queda vacío")
}

func TestSancionesDeAlumno(t *testing.T) {
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sanciones-cd/cad1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"alumno":"Juan Pérez","compania":"Alfa","grado":"CADETE 3",
			"guardia":2,"total_sanciones":1,
			"sanciones":[{
				"uid":"s1","fecha":"2026-02-10","estado":true,
				"ID_tipo_sancion":{"_id":"t1","descripcion":"HTE"},
				"ID_duracion_sancion":{"_id":"d3","descripcion":"3"},
				"ID_autoridad":{"nombre1":"Carlos","apellido1":"Ruiz","apellido2":"Mora"}
			}]
		}`))
	})

	resumen, err := cli.SancionesDeAlumno(context.Background(), "cad1")
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", resumen.Alumno)
	require.Len(t, resumen.Sanciones, 1)

	s := resumen.Sanciones[0]
	assert.Equal(t, "HTE", s.Tipo.Descripcion)
	assert.Equal(t, "3", s.Duracion.Descripcion)
	assert.Equal(t, "Carlos Ruiz Mora", s.Autoridad)
	assert.Equal(t, "ACTIVA", s.EstadoTexto())
}

func TestCrearSancionNombresDeCampo(t *testing.T) {
	var recibido map[string]string
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sancionesPost", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		w.WriteHeader(http.StatusCreated)
	})

	err := cli.CrearSancion(context.Background(), NuevaSancion{
		AlumnoID:    "cad1",
		AutoridadID: "aut1",
		TipoID:      "t1",
		DuracionID:  "d3",
		Fecha:       "2026-02-10",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"ID_alumno":           "cad1",
		"ID_autoridad":        "aut1",
		"ID_tipo_sancion":     "t1",
		"ID_duracion_sancion": "d3",
		"fecha":               "2026-02-10",
	}, recibido)
}

func TestActualizarEstado(t *testing.T) {
	var recibido map[string]bool
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/sancionesPut/s1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
	})

	require.NoError(t, cli.ActualizarEstado(context.Background(), "s1", false))
	assert.Equal(t, map[string]bool{"estado": false}, recibido)
}

func TestErrorDeEstado(t *testing.T) {
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := cli.Companias(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 500, se.Status)
	assert.Equal(t, "companias", se.Operacion)
}

func TestLogin(t *testing.T) {
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1234567890), body["cc"], "la cédula viaja como número")
		_, _ = w.Write([]byte(`{"cc":1234567890,"rol":"admin","ID_autoridad":"aut1","token":"tk"}`))
	})

	id, err := cli.Login(context.Background(), "1234567890", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", id.Cedula)
	assert.Equal(t, "admin", id.Rol)
	assert.Equal(t, "aut1", id.AutoridadID)
	assert.Equal(t, "tk", id.Token)
}

func TestLoginNombresAlternativos(t *testing.T) {
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"documento":99,"rol":"user","ID_alumno":"al1"}`))
	})

	id, err := cli.Login(context.Background(), "99", "x")
	require.NoError(t, err)
	assert.Equal(t, "99", id.Cedula)
	assert.Equal(t, "al1", id.AlumnoID)
	assert.Empty(t, id.AutoridadID)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized} {
		cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := cli.Login(context.Background(), "1", "mala")
		assert.ErrorIs(t, err, ErrCredenciales, "status %d", status)
	}
}

func TestContextoCancelado(t *testing.T) {
	cli := servidor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cli.Companias(ctx)
	assert.Error(t, err)
}
