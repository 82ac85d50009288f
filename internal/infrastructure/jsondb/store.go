// Package jsondb implementa el RecordStore sobre archivos JSON locales: una
// colección por archivo, con el arreglo completo de registros dentro. Es el
// backend de respaldo cuando la base de datos en red no está disponible al
// arrancar.
//
// Cada mutación relee la colección completa, la modifica en memoria y
// reescribe el archivo entero de forma atómica (archivo temporal + rename).
// Las mutaciones sobre una misma colección se serializan con un mutex por
// colección; sin esa exclusión una escritura pisaría a otra, porque la unidad
// de escritura es la colección completa y no el registro.
package jsondb

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/domain/repository"
)

var _ repository.RecordStore = (*Store)(nil)

// Store implementación del RecordStore sobre archivos JSON.
type Store struct {
	dir string

	mu    sync.Mutex // protege locks
	locks map[record.Collection]*sync.Mutex
}

// NewStore crea el almacén sobre dir, creando la carpeta si no existe. Los
// archivos de colección se crean vacíos en el primer acceso.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de datos: %w", err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[record.Collection]*sync.Mutex),
	}, nil
}

// lock devuelve el mutex de la colección, creándolo la primera vez.
func (s *Store) lock(col record.Collection) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[col]
	if !ok {
		m = &sync.Mutex{}
		s.locks[col] = m
	}
	return m
}

func (s *Store) path(col record.Collection) string {
	return filepath.Join(s.dir, string(col)+".json")
}

// read parsea la colección completa. Archivo ausente, vacío o corrupto
// decodifica a colección vacía, nunca a error: el contrato del recurso es
// "se crea vacío en el primer acceso".
func (s *Store) read(col record.Collection) []record.Record {
	data, err := os.ReadFile(s.path(col))
	if err != nil {
		return []record.Record{}
	}
	var recs []record.Record
	if err := json.Unmarshal(data, &recs); err != nil || recs == nil {
		return []record.Record{}
	}
	return recs
}

// write serializa la colección completa y reemplaza el archivo en una sola
// operación observable: se escribe a un temporal en la misma carpeta y se
// renombra sobre el destino, así un lector concurrente ve la versión anterior
// o la nueva, nunca una mezcla.
func (s *Store) write(col record.Collection, recs []record.Record) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", col, err)
	}
	tmp, err := os.CreateTemp(s.dir, string(col)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(col)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("reemplazar %s: %w", col, err)
	}
	return nil
}

// newID genera un id local: timestamp en milisegundos más un sufijo aleatorio,
// comparado siempre como string opaco por los llamadores.
func newID() string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + hex.EncodeToString(buf)
}

// ListAll devuelve todos los registros en orden de inserción. No toma el
// mutex: el rename atómico garantiza que nunca se lee un estado parcial.
func (s *Store) ListAll(_ context.Context, col record.Collection) ([]record.Record, error) {
	recs := s.read(col)
	out := make([]record.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Clone())
	}
	return out, nil
}

// Insert agrega el registro al final de la colección, asignando id si no
// trae, y reescribe el recurso completo.
func (s *Store) Insert(_ context.Context, col record.Collection, rec record.Record) (record.Record, error) {
	m := s.lock(col)
	m.Lock()
	defer m.Unlock()

	stored := rec.Clone()
	if stored.ID() == "" {
		stored["id"] = newID()
	}
	recs := append(s.read(col), stored)
	if err := s.write(col, recs); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// UpdateByID aplica un parche superficial sobre el registro con ese id y
// reescribe la colección. ErrNotFound si el id no existe.
func (s *Store) UpdateByID(_ context.Context, col record.Collection, id string, patch record.Record) (record.Record, error) {
	m := s.lock(col)
	m.Lock()
	defer m.Unlock()

	recs := s.read(col)
	for i, r := range recs {
		if r.ID() == id {
			merged := r.Merge(patch)
			recs[i] = merged
			if err := s.write(col, recs); err != nil {
				return nil, err
			}
			return merged.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteByID quita el registro con ese id, reescribe la colección y devuelve
// el registro eliminado. ErrNotFound si el id no existe.
func (s *Store) DeleteByID(_ context.Context, col record.Collection, id string) (record.Record, error) {
	m := s.lock(col)
	m.Lock()
	defer m.Unlock()

	recs := s.read(col)
	for i, r := range recs {
		if r.ID() == id {
			removed := r.Clone()
			recs = append(recs[:i], recs[i+1:]...)
			if err := s.write(col, recs); err != nil {
				return nil, err
			}
			return removed, nil
		}
	}
	return nil, domain.ErrNotFound
}
