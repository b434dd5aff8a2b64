package repository

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/pos"
)

// SessionStore guarda las sesiones del servidor. Sin TTL: una sesión vive hasta Delete.
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	// Get devuelve domain.ErrNotFound si la sesión no existe.
	Get(ctx context.Context, id string) (*entity.Session, error)
	SetLastInvoice(ctx context.Context, id string, invoice *entity.SavedInvoice) error
	// Delete es idempotente.
	Delete(ctx context.Context, id string) error
}

// CartStore guarda el carrito borrador de cada sesión en el punto de venta.
type CartStore interface {
	// Get devuelve domain.ErrNotFound si la sesión aún no tiene carrito.
	Get(ctx context.Context, sessionID string) (*pos.Cart, error)
	Save(ctx context.Context, sessionID string, cart *pos.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
