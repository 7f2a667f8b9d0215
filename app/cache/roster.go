// Package cache holds the per-company cadet roster cache. Entries are
// replaced wholesale and never expire on their own: the only refresh
// path is Invalidate, which the roster handler runs when the browser's
// first request after a full page reload asks for fresh data. A roster
// edited in the backend stays stale until such a reload (or a process
// restart). There is deliberately no lock spanning a fetch: two
// near-simultaneous requests for the same uncached company both hit the
// backend and the last write wins, which is harmless because both carry
// the same idempotent read. What is never allowed is a stale fetch
// (its request context cancelled, or a newer fetch already committed)
// landing in the cache; the Begin/Commit token guards against that.
package cache

import (
	"context"
	"sync"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/models"
)

type Roster struct {
	mu       sync.Mutex
	entradas map[string][]models.Cadete
	ultimo   map[string]uint64
	contador uint64
}

// Token identifies one in-flight fetch for one company.
type Token struct {
	companiaID string
	seq        uint64
}

func NewRoster() *Roster {
	return &Roster{
		entradas: make(map[string][]models.Cadete),
		ultimo:   make(map[string]uint64),
	}
}

// Get returns the cached roster for the company, if present.
func (r *Roster) Get(companiaID string) ([]models.Cadete, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cadetes, ok := r.entradas[companiaID]
	return cadetes, ok
}

// Begin marks the start of a fetch and returns the token the result
// must be committed with. A later Begin for the same company
// supersedes this token.
func (r *Roster) Begin(companiaID string) Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contador++
	r.ultimo[companiaID] = r.contador
	return Token{companiaID: companiaID, seq: r.contador}
}

// Commit stores the fetched roster under the token's company key. The
// write is dropped, and false returned, when the request context was
// cancelled or a newer fetch for the same company has begun since.
func (r *Roster) Commit(ctx context.Context, t Token, cadetes []models.Cadete) bool {
	if ctx.Err() != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ultimo[t.companiaID] != t.seq {
		return false
	}
	r.entradas[t.companiaID] = cadetes
	return true
}

// Invalidate drops the cached roster for the company and supersedes any
// fetch already in flight, so the next GetOrFetch goes to the backend.
func (r *Roster) Invalidate(companiaID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entradas, companiaID)
	r.contador++
	r.ultimo[companiaID] = r.contador
}

// GetOrFetch returns the cached roster or fetches it with fn and caches
// the result. The fetched roster is returned to the caller even when
// the commit is dropped as stale.
func (r *Roster) GetOrFetch(ctx context.Context, companiaID string, fn func(context.Context) ([]models.Cadete, error)) ([]models.Cadete, error) {
	if cadetes, ok := r.Get(companiaID); ok {
		return cadetes, nil
	}
	t := r.Begin(companiaID)
	cadetes, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	r.Commit(ctx, t, cadetes)
	return cadetes, nil
}
