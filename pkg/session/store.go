// Package session implementa un almacén de sesiones en memoria: ids opacos
// aleatorios asociados a un usuario, con expiración por TTL y una goroutine
// de limpieza que poda las sesiones vencidas a intervalo fijo.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	userID    int
	expiresAt time.Time
}

// Store almacén de sesiones. Seguro para uso concurrente.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewStore crea el almacén y arranca el janitor, que poda las sesiones
// expiradas cada checkPeriod. Llamar a Stop al apagar.
func NewStore(ttl, checkPeriod time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.janitor(checkPeriod)
	return s
}

// Create abre una sesión para el usuario y devuelve su id opaco.
func (s *Store) Create(userID int) string {
	sid := uuid.New().String()
	s.mu.Lock()
	s.sessions[sid] = session{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return sid
}

// Get devuelve el usuario de una sesión viva. Una sesión expirada cuenta
// como inexistente aunque el janitor aún no la haya podado.
func (s *Store) Get(sid string) (int, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok || time.Now().After(sess.expiresAt) {
		return 0, false
	}
	return sess.userID, true
}

// Destroy elimina una sesión. Es un no-op si el id no existe.
func (s *Store) Destroy(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

// Stop detiene el janitor. Idempotente.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Store) janitor(checkPeriod time.Duration) {
	ticker := time.NewTicker(checkPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for sid, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, sid)
				}
			}
			s.mu.Unlock()
		}
	}
}
