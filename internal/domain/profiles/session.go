package profiles

import (
	"context"
	"sync"
)

// Session es una activación de la vista de detalle: arranca con Loading=true
// y pasa al resultado de la carga cuando termina.
type Session struct {
	mu     sync.RWMutex
	view   View
	closed bool
	done   chan struct{}
}

// Open lanza la carga en background. Cada llamada es independiente (no hay caché).
func (s *Service) Open(ctx context.Context, petID string) *Session {
	ss := &Session{done: make(chan struct{})}
	ss.view = emptyView()
	ss.view.Loading = true

	go func() {
		defer close(ss.done)
		v := s.Load(ctx, petID)

		ss.mu.Lock()
		defer ss.mu.Unlock()
		if ss.closed {
			// vista abandonada: el resultado se descarta
			return
		}
		ss.view = v
	}()
	return ss
}

// View devuelve una copia del estado actual.
func (ss *Session) View() View {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.view
}

// Done se cierra cuando la carga terminó (aunque la sesión esté cerrada).
func (ss *Session) Done() <-chan struct{} {
	return ss.done
}

// Wait bloquea hasta que termine la carga o se cancele ctx.
func (ss *Session) Wait(ctx context.Context) (View, error) {
	select {
	case <-ss.done:
		return ss.View(), nil
	case <-ctx.Done():
		return ss.View(), ctx.Err()
	}
}

// Close marca la vista como abandonada; una carga en vuelo termina pero no pisa el estado.
func (ss *Session) Close() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.closed = true
}
