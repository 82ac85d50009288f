// Package postgres implementa el RecordStore sobre PostgreSQL: una tabla por
// colección con el registro completo en una columna JSONB. Los ids son
// nativos del backend (UUID) y, como en el backend de archivos, se comparan
// como strings opacos.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/domain/repository"
)

// Querier abstrae pool o tx de pgx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.RecordStore = (*Store)(nil)

// Store implementación del RecordStore sobre PostgreSQL/JSONB.
type Store struct {
	q Querier
}

// NewStore construye el adaptador. Pasar pool o tx (Querier).
func NewStore(q Querier) *Store {
	return &Store{q: q}
}

// EnsureSchema crea las tablas de colecciones si no existen. seq preserva el
// orden de inserción en los listados.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, col := range record.Collections() {
		ddl := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id  text PRIMARY KEY,
				doc jsonb NOT NULL,
				seq bigint GENERATED ALWAYS AS IDENTITY
			)`, tableName(col))
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("crear tabla %s: %w", col, err)
		}
	}
	return nil
}

// tableName mapea la colección a su tabla. El conjunto es cerrado: nunca se
// interpola texto del llamador en el SQL.
func tableName(col record.Collection) string {
	switch col {
	case record.Inventory:
		return "records_inventory"
	case record.Documents:
		return "records_documents"
	case record.Logs:
		return "records_logs"
	case record.Users:
		return "records_users"
	default:
		return "records_misc"
	}
}

// ListAll devuelve todos los registros de la colección en orden de inserción.
func (s *Store) ListAll(ctx context.Context, col record.Collection) ([]record.Record, error) {
	rows, err := s.q.Query(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY seq`, tableName(col)))
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", col, err)
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", col, err)
		}
		var rec record.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", col, err)
		}
		out = append(out, rec)
	}
	if out == nil {
		out = []record.Record{}
	}
	return out, rows.Err()
}

// Insert persiste el registro asignando un UUID si no trae id y devuelve la
// forma almacenada.
func (s *Store) Insert(ctx context.Context, col record.Collection, rec record.Record) (record.Record, error) {
	stored := rec.Clone()
	if stored.ID() == "" {
		stored["id"] = uuid.New().String()
	}
	doc, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("serializar %s: %w", col, err)
	}
	_, err = s.q.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, tableName(col)),
		stored.ID(), doc,
	)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", col, err)
	}
	return stored, nil
}

// UpdateByID aplica un parche superficial vía merge JSONB (doc || patch) y
// devuelve el registro resultante. ErrNotFound si el id no existe.
func (s *Store) UpdateByID(ctx context.Context, col record.Collection, id string, patch record.Record) (record.Record, error) {
	p := patch.Clone()
	delete(p, "id") // el id nunca se parcha
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("serializar parche %s: %w", col, err)
	}
	var merged []byte
	err = s.q.QueryRow(ctx,
		fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1 RETURNING doc`, tableName(col)),
		id, raw,
	).Scan(&merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", col, err)
	}
	var rec record.Record
	if err := json.Unmarshal(merged, &rec); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", col, err)
	}
	return rec, nil
}

// DeleteByID elimina y devuelve el registro. ErrNotFound si el id no existe.
func (s *Store) DeleteByID(ctx context.Context, col record.Collection, id string) (record.Record, error) {
	var removed []byte
	err := s.q.QueryRow(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING doc`, tableName(col)),
		id,
	).Scan(&removed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete %s: %w", col, err)
	}
	var rec record.Record
	if err := json.Unmarshal(removed, &rec); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", col, err)
	}
	return rec, nil
}
