package core

import (
	"sync"
	"time"
)

type sesion struct {
	turns      []Turn
	createdAt  time.Time
	lastActive time.Time
}

// SessionRegistry mantiene en memoria la conversación viva de cada sesión.
// Está acotado: las sesiones ociosas más allá del TTL se barren
// periódicamente y, al llegar al tope de entradas, se desaloja la menos
// activa. Es el único dueño de las conversaciones; los turnos sólo se agregan
// por AppendExchange y nunca se editan.
type SessionRegistry struct {
	mu       sync.Mutex
	sesiones map[string]*sesion
	ttl      time.Duration
	max      int
	done     chan struct{}
}

func NewSessionRegistry(ttl time.Duration, maxSesiones int) *SessionRegistry {
	r := &SessionRegistry{
		sesiones: make(map[string]*sesion),
		ttl:      ttl,
		max:      maxSesiones,
		done:     make(chan struct{}),
	}
	go r.janitor()
	return r
}

func (r *SessionRegistry) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.barrerOciosas()
		case <-r.done:
			return
		}
	}
}

func (r *SessionRegistry) barrerOciosas() {
	limite := time.Now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sesiones {
		if s.lastActive.Before(limite) {
			delete(r.sesiones, id)
		}
	}
}

func (r *SessionRegistry) Stop() {
	close(r.done)
}

// History devuelve una copia de los turnos de la sesión, si existe.
func (r *SessionRegistry) History(sessionID string) ([]Turn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sesiones[sessionID]
	if !ok {
		return nil, false
	}
	s.lastActive = time.Now()
	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	return turns, true
}

// CreateIfAbsent registra la sesión con los turnos semilla dados. La
// inserción es atómica: si otra petición ganó la carrera entre el History
// previo y esta llamada, se adopta la conversación existente en lugar de
// pisarla, y created queda en false.
func (r *SessionRegistry) CreateIfAbsent(sessionID string, seed []Turn) (turns []Turn, created bool) {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	if existente, ok := r.sesiones[sessionID]; ok {
		existente.lastActive = now
		turns = make([]Turn, len(existente.turns))
		copy(turns, existente.turns)
		return turns, false
	}

	if r.max > 0 && len(r.sesiones) >= r.max {
		r.desalojarMenosActiva()
	}

	s := &sesion{
		turns:      make([]Turn, len(seed)),
		createdAt:  now,
		lastActive: now,
	}
	copy(s.turns, seed)
	r.sesiones[sessionID] = s

	turns = make([]Turn, len(seed))
	copy(turns, seed)
	return turns, true
}

// desalojarMenosActiva requiere r.mu tomado.
func (r *SessionRegistry) desalojarMenosActiva() {
	var victima string
	var masVieja time.Time
	for id, s := range r.sesiones {
		if victima == "" || s.lastActive.Before(masVieja) {
			victima = id
			masVieja = s.lastActive
		}
	}
	if victima != "" {
		delete(r.sesiones, victima)
	}
}

// AppendExchange agrega el par usuario/asistente como unidad. Devuelve false
// si la sesión fue desalojada entre medio.
func (r *SessionRegistry) AppendExchange(sessionID, userText, replyText string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sesiones[sessionID]
	if !ok {
		return false
	}
	s.turns = append(s.turns, Turn{Role: RoleUser, Text: userText}, Turn{Role: RoleModel, Text: replyText})
	s.lastActive = time.Now()
	return true
}

// Delete elimina la sesión y dice si existía.
func (r *SessionRegistry) Delete(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sesiones[sessionID]
	delete(r.sesiones, sessionID)
	return ok
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sesiones)
}
