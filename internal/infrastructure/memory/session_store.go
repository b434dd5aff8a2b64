package memory

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/pos"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var (
	_ repository.SessionStore = (*SessionStore)(nil)
	_ repository.CartStore    = (*CartStore)(nil)
)

// SessionStore sesiones en memoria del proceso (SESSION_DRIVER=memory).
type SessionStore struct {
	s *Store
}

func NewSessionStore(s *Store) *SessionStore {
	return &SessionStore{s: s}
}

func (st *SessionStore) Save(_ context.Context, session *entity.Session) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.sessions[session.ID] = cloneSession(session)
	return nil
}

func (st *SessionStore) Get(_ context.Context, id string) (*entity.Session, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	session, ok := st.s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneSession(session), nil
}

func (st *SessionStore) SetLastInvoice(_ context.Context, id string, invoice *entity.SavedInvoice) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	session, ok := st.s.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	session.LastInvoice = invoice
	st.s.sessions[id] = cloneSession(session)
	return nil
}

func (st *SessionStore) Delete(_ context.Context, id string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	delete(st.s.sessions, id)
	return nil
}

// CartStore carritos borrador por sesión.
type CartStore struct {
	s *Store
}

func NewCartStore(s *Store) *CartStore {
	return &CartStore{s: s}
}

func (c *CartStore) Get(_ context.Context, sessionID string) (*pos.Cart, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	cart, ok := c.s.carts[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneCart(cart), nil
}

func (c *CartStore) Save(_ context.Context, sessionID string, cart *pos.Cart) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.carts[sessionID] = cloneCart(cart)
	return nil
}

func (c *CartStore) Delete(_ context.Context, sessionID string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	delete(c.s.carts, sessionID)
	return nil
}
