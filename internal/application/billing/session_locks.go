package billing

import "sync"

// sessionLocks un mutex por sesión. La entrada se borra cuando nadie la tiene
// tomada ni la espera, así la tabla no crece con cada login.
type sessionLocks struct {
	mu sync.Mutex
	m  map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{m: make(map[string]*sessionLock)}
}

// lock bloquea la sesión y devuelve la función que la libera.
func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	e, ok := l.m[id]
	if !ok {
		e = &sessionLock{}
		l.m[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}

// len entradas vivas.
func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
