package filtros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

func roster() []models.Cadete {
	return []models.Cadete{
		{UID: "c1", Nombre1: "Juan", Apellido1: "Pérez", Grado: "CADETE 3", Rol: "Alumno", Guardia: 2},
		{UID: "c2", Nombre1: "Ana", Nombre2: "María", Apellido1: "Gómez", Grado: "CADETE 1", Rol: "Brigadier", Guardia: 1},
		{UID: "c3", Nombre1: "Luis", Apellido1: "Pereira", Apellido2: "Ruiz", Grado: "cadete 3", Rol: "alumno", Guardia: 2},
		{UID: "c4", Nombre1: "Sofía", Apellido1: "Torres", Grado: "CADETE 2", Rol: "Alumno", Guardia: 3},
	}
}

func TestFiltrarSinFiltrosDevuelveTodo(t *testing.T) {
	cadetes := roster()
	out := FiltrarCadetes(cadetes, CadeteFiltros{})
	require.Len(t, out, len(cadetes))
	for i := range cadetes {
		assert.Equal(t, cadetes[i].UID, out[i].UID, "el orden se preserva")
	}
}

func TestFiltrarNombreSubcadena(t *testing.T) {
	// "pere" matches Pérez (accent-insensitive) and Pereira
	out := FiltrarCadetes(roster(), CadeteFiltros{Nombre: "pere"})
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].UID)
	assert.Equal(t, "c3", out[1].UID)

	out = FiltrarCadetes(roster(), CadeteFiltros{Nombre: "pérez"})
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].UID)

	// substring over the full display name crosses name-part boundaries
	out = FiltrarCadetes(roster(), CadeteFiltros{Nombre: "maría gómez"})
	require.Len(t, out, 1)
	assert.Equal(t, "c2", out[0].UID)
}

func TestFiltrarGradoCanonico(t *testing.T) {
	// the stored grade varies in case; the comparison is canonical
	out := FiltrarCadetes(roster(), CadeteFiltros{Grado: "cadete 3"})
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].UID)
	assert.Equal(t, "c3", out[1].UID)
}

func TestFiltrarConjuncion(t *testing.T) {
	f := CadeteFiltros{Grado: "CADETE 3", Rol: "ALUMNO", Guardia: "2"}
	out := FiltrarCadetes(roster(), f)
	require.Len(t, out, 2)

	f.Nombre = "juan"
	out = FiltrarCadetes(roster(), f)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].UID)

	// one failing predicate is enough to drop a record
	f.Guardia = "9"
	out = FiltrarCadetes(roster(), f)
	assert.Empty(t, out)
}

func TestFiltrarListaVacia(t *testing.T) {
	assert.Empty(t, FiltrarCadetes(nil, CadeteFiltros{Nombre: "x"}))
	assert.Empty(t, FiltrarCadetes([]models.Cadete{}, CadeteFiltros{}))
}

func TestVacios(t *testing.T) {
	assert.True(t, CadeteFiltros{}.Vacios())
	assert.True(t, CadeteFiltros{Nombre: "  "}.Vacios())
	assert.False(t, CadeteFiltros{Guardia: "1"}.Vacios())
}

func TestFiltrarSancionesSoloActivas(t *testing.T) {
	sanciones := []models.Sancion{
		{UID: "s1", Estado: true},
		{UID: "s2", Estado: false},
		{UID: "s3", Estado: true},
	}

	out := FiltrarSanciones(sanciones, SancionFiltros{SoloActivas: true})
	require.Len(t, out, 2)
	assert.Equal(t, "s1", out[0].UID)
	assert.Equal(t, "s3", out[1].UID)

	// without the flag both states pass, untouched
	out = FiltrarSanciones(sanciones, SancionFiltros{})
	assert.Len(t, out, 3)
}

func TestOpcionesDeCadetes(t *testing.T) {
	ops := OpcionesDeCadetes(roster())
	assert.Equal(t, []string{"CADETE 3", "CADETE 1", "CADETE 2"}, ops.Grados)
	assert.Equal(t, []string{"ALUMNO", "BRIGADIER"}, ops.Roles)
	assert.Equal(t, []string{"2", "1", "3"}, ops.Guardias)
}
