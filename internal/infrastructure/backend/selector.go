// Package backend resuelve, una sola vez al arrancar, qué implementación del
// RecordStore sirve al proceso: PostgreSQL si la sonda de conectividad
// responde dentro del timeout, o el almacén de archivos JSON en caso
// contrario. La selección no se reevalúa nunca durante la vida del proceso.
package backend

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lbcompany/inventario-api/internal/domain/repository"
	"github.com/lbcompany/inventario-api/internal/infrastructure/jsondb"
	"github.com/lbcompany/inventario-api/internal/infrastructure/postgres"
	"github.com/lbcompany/inventario-api/pkg/config"
	"github.com/lbcompany/inventario-api/pkg/logger"
)

// Nombres de backend para logs y health.
const (
	NamePostgres = "postgres"
	NameJSONDB   = "jsondb"
)

// Selection es el resultado de la selección: el store elegido y, si aplica,
// el pool que el llamador debe cerrar al apagar.
type Selection struct {
	Store repository.RecordStore
	Name  string
	pool  *pgxpool.Pool
}

// Close libera los recursos del backend seleccionado.
func (s *Selection) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Select intenta el backend en red con un timeout acotado y cae al almacén de
// archivos si no responde. La indisponibilidad de la base no es un error del
// proceso: se registra la advertencia y se continúa en modo archivos.
func Select(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Selection, error) {
	probeCtx, cancel := context.WithTimeout(ctx, cfg.Store.ProbeTimeout)
	defer cancel()

	pool, err := postgres.NewPool(probeCtx, cfg.DB)
	if err == nil {
		if schemaErr := postgres.EnsureSchema(probeCtx, pool); schemaErr == nil {
			log.Info().Str("backend", NamePostgres).Msg("backend en red disponible")
			return &Selection{Store: postgres.NewStore(pool), Name: NamePostgres, pool: pool}, nil
		} else {
			err = schemaErr
			pool.Close()
		}
	}

	log.Warn().Err(err).
		Str("backend", NameJSONDB).
		Str("data_dir", cfg.Store.DataDir).
		Msg("base de datos no disponible, usando almacenamiento en archivos")

	store, err := jsondb.NewStore(cfg.Store.DataDir)
	if err != nil {
		return nil, err
	}
	return &Selection{Store: store, Name: NameJSONDB}, nil
}
