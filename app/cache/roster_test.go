package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

func cadete(uid string) []models.Cadete {
	return []models.Cadete{{UID: uid, Nombre1: "Juan", Apellido1: "Pérez"}}
}

func TestCommitNormal(t *testing.T) {
	r := NewRoster()
	tok := r.Begin("compA")

	assert.True(t, r.Commit(context.Background(), tok, cadete("c1")))

	cadetes, ok := r.Get("compA")
	require.True(t, ok)
	assert.Equal(t, "c1", cadetes[0].UID)
}

func TestCommitConContextoCancelado(t *testing.T) {
	r := NewRoster()
	tok := r.Begin("compA")

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the view that asked is gone

	assert.False(t, r.Commit(ctx, tok, cadete("c1")))
	_, ok := r.Get("compA")
	assert.False(t, ok, "un fetch cancelado nunca llena la caché")
}

func TestFetchObsoletoNoPisaEntradaNueva(t *testing.T) {
	r := NewRoster()

	viejo := r.Begin("compA")
	nuevo := r.Begin("compA")
	require.True(t, r.Commit(context.Background(), nuevo, cadete("nuevo")))

	// the older in-flight fetch resolves late and must be dropped
	assert.False(t, r.Commit(context.Background(), viejo, cadete("viejo")))

	cadetes, ok := r.Get("compA")
	require.True(t, ok)
	assert.Equal(t, "nuevo", cadetes[0].UID)
}

func TestTokensSonPorCompania(t *testing.T) {
	r := NewRoster()

	tokA := r.Begin("compA")
	tokB := r.Begin("compB")

	assert.True(t, r.Commit(context.Background(), tokB, cadete("b1")))
	// a fetch for another company never invalidates this one
	assert.True(t, r.Commit(context.Background(), tokA, cadete("a1")))

	a, _ := r.Get("compA")
	b, _ := r.Get("compB")
	assert.Equal(t, "a1", a[0].UID)
	assert.Equal(t, "b1", b[0].UID)
}

func TestCambioRapidoDeCompania(t *testing.T) {
	// A→B switch before A's fetch resolves: A's result arrives with a
	// cancelled context and must land nowhere; only B's entry survives.
	r := NewRoster()

	ctxA, cancelA := context.WithCancel(context.Background())
	tokA := r.Begin("compA")

	cancelA()
	tokB := r.Begin("compB")
	require.True(t, r.Commit(context.Background(), tokB, cadete("b1")))

	assert.False(t, r.Commit(ctxA, tokA, cadete("a1")))

	_, okA := r.Get("compA")
	assert.False(t, okA)
	b, okB := r.Get("compB")
	require.True(t, okB)
	assert.Equal(t, "b1", b[0].UID)
}

func TestInvalidate(t *testing.T) {
	r := NewRoster()
	tok := r.Begin("compA")
	require.True(t, r.Commit(context.Background(), tok, cadete("viejo")))

	r.Invalidate("compA")

	_, ok := r.Get("compA")
	assert.False(t, ok, "la entrada descartada no se sirve más")

	// GetOrFetch vuelve al backend
	llamadas := 0
	cadetes, err := r.GetOrFetch(context.Background(), "compA", func(context.Context) ([]models.Cadete, error) {
		llamadas++
		return cadete("nuevo"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, llamadas)
	assert.Equal(t, "nuevo", cadetes[0].UID)
}

func TestInvalidateSupersedeFetchEnVuelo(t *testing.T) {
	r := NewRoster()
	tok := r.Begin("compA")

	// the invalidation lands while the fetch is still in flight
	r.Invalidate("compA")

	assert.False(t, r.Commit(context.Background(), tok, cadete("viejo")))
	_, ok := r.Get("compA")
	assert.False(t, ok)
}

func TestGetOrFetch(t *testing.T) {
	r := NewRoster()
	llamadas := 0
	fn := func(context.Context) ([]models.Cadete, error) {
		llamadas++
		return cadete("c1"), nil
	}

	cadetes, err := r.GetOrFetch(context.Background(), "compA", fn)
	require.NoError(t, err)
	assert.Equal(t, "c1", cadetes[0].UID)

	// cached: the backend is not consulted again
	_, err = r.GetOrFetch(context.Background(), "compA", fn)
	require.NoError(t, err)
	assert.Equal(t, 1, llamadas)
}

func TestGetOrFetchError(t *testing.T) {
	r := NewRoster()
	falla := errors.New("backend caído")

	_, err := r.GetOrFetch(context.Background(), "compA", func(context.Context) ([]models.Cadete, error) {
		return nil, falla
	})
	assert.ErrorIs(t, err, falla)

	_, ok := r.Get("compA")
	assert.False(t, ok, "los errores no se cachean")
}
