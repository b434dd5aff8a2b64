package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/pos"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
)

var (
	_ repository.SessionStore = (*SessionStore)(nil)
	_ repository.CartStore    = (*CartStore)(nil)
)

// Campos del hash de sesión.
const (
	fieldID          = "id"
	fieldToken       = "token"
	fieldUserID      = "user_id"
	fieldUsername    = "username"
	fieldRole        = "role"
	fieldUser        = "user"
	fieldLastInvoice = "lastInvoice"
	fieldCreatedAt   = "created_at"
)

// SessionStore cada sesión es un hash sin TTL; se borra en el logout.
type SessionStore struct {
	rdb goredis.UniversalClient
}

func NewSessionStore(rdb goredis.UniversalClient) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) Save(ctx context.Context, session *entity.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	values := map[string]any{
		fieldID:        session.ID,
		fieldToken:     session.Token,
		fieldUserID:    session.UserID,
		fieldUsername:  session.Username,
		fieldRole:      string(session.Role),
		fieldUser:      string(user),
		fieldCreatedAt: session.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	key := sessionKey(session.ID)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, values)
	if session.LastInvoice != nil {
		last, err := json.Marshal(session.LastInvoice)
		if err != nil {
			return fmt.Errorf("encode last invoice: %w", err)
		}
		pipe.HSet(ctx, key, fieldLastInvoice, string(last))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	values, err := s.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if len(values) == 0 {
		return nil, domain.ErrNotFound
	}

	session := &entity.Session{
		ID:       values[fieldID],
		Token:    values[fieldToken],
		UserID:   values[fieldUserID],
		Username: values[fieldUsername],
		Role:     entity.Role(values[fieldRole]),
	}
	if raw := values[fieldUser]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &session.User); err != nil {
			return nil, fmt.Errorf("decode session user: %w", err)
		}
	}
	if raw := values[fieldLastInvoice]; raw != "" {
		var last entity.SavedInvoice
		if err := json.Unmarshal([]byte(raw), &last); err != nil {
			return nil, fmt.Errorf("decode last invoice: %w", err)
		}
		session.LastInvoice = &last
	}
	if raw := values[fieldCreatedAt]; raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			session.CreatedAt = t
		}
	}
	return session, nil
}

// SetLastInvoice reemplaza la última factura de una sesión existente. La
// comprobación y la escritura van bajo WATCH: una sesión borrada a mitad de
// camino no se recrea con un solo campo.
func (s *SessionStore) SetLastInvoice(ctx context.Context, id string, invoice *entity.SavedInvoice) error {
	key := sessionKey(id)
	var raw []byte
	if invoice != nil {
		var err error
		if raw, err = json.Marshal(invoice); err != nil {
			return fmt.Errorf("encode last invoice: %w", err)
		}
	}
	update := func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("check session: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(p goredis.Pipeliner) error {
			if raw == nil {
				p.HDel(ctx, key, fieldLastInvoice)
				return nil
			}
			p.HSet(ctx, key, fieldLastInvoice, string(raw))
			return nil
		})
		return err
	}
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		// otra escritura tocó la llave: se vuelve a comprobar
		if err = s.rdb.Watch(ctx, update, key); !errors.Is(err, goredis.TxFailedErr) {
			break
		}
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return err
	case err != nil:
		return fmt.Errorf("set last invoice: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CartStore el carrito se guarda como JSON bajo una clave por sesión.
type CartStore struct {
	rdb goredis.UniversalClient
}

func NewCartStore(rdb goredis.UniversalClient) *CartStore {
	return &CartStore{rdb: rdb}
}

func (c *CartStore) Get(ctx context.Context, sessionID string) (*pos.Cart, error) {
	raw, err := c.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	var cart pos.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if cart.Lines == nil {
		cart.Lines = []pos.Line{}
	}
	return &cart, nil
}

func (c *CartStore) Save(ctx context.Context, sessionID string, cart *pos.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := c.rdb.Set(ctx, cartKey(sessionID), raw, 0).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (c *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := c.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
