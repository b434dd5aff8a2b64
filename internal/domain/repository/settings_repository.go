package repository

import (
	"context"

	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// SettingsRepository configuración única del negocio.
type SettingsRepository interface {
	// Get devuelve la configuración guardada o entity.DefaultSettings si no hay fila.
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
	// ReserveInvoiceNumber devuelve prefijo y consecutivo actuales e incrementa el contador.
	ReserveInvoiceNumber(ctx context.Context) (prefix string, number int64, err error)
}
