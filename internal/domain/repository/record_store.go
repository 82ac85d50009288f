package repository

import (
	"context"

	"github.com/lbcompany/inventario-api/internal/domain/record"
)

// RecordStore define el puerto de persistencia uniforme que satisfacen los dos
// backends (archivos JSON y PostgreSQL). Los llamadores no saben cuál está
// activo: la selección ocurre una sola vez al arrancar el proceso.
//
// Los ids se comparan por igualdad de strings sin asumir formato. UpdateByID
// aplica un parche superficial (los campos ausentes del parche se preservan)
// y tanto UpdateByID como DeleteByID devuelven domain.ErrNotFound si el id no
// existe.
type RecordStore interface {
	ListAll(ctx context.Context, col record.Collection) ([]record.Record, error)
	Insert(ctx context.Context, col record.Collection, rec record.Record) (record.Record, error)
	UpdateByID(ctx context.Context, col record.Collection, id string, patch record.Record) (record.Record, error)
	DeleteByID(ctx context.Context, col record.Collection, id string) (record.Record, error)
}
