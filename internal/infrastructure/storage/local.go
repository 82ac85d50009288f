package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var _ BlobStorage = (*LocalStorage)(nil)

// LocalStorage implementación del BlobStorage sobre una carpeta local. Las
// claves se reducen a su nombre base: ningún llamador puede salirse de la
// carpeta de uploads.
type LocalStorage struct {
	dir string
}

// NewLocal crea el almacén sobre dir, creando la carpeta si no existe.
func NewLocal(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de uploads: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) path(key string) string {
	return filepath.Join(l.dir, filepath.Base(key))
}

// Put escribe a un temporal y renombra sobre el destino, así un reemplazo
// (reporte del mismo día) nunca deja un payload a medias.
func (l *LocalStorage) Put(_ context.Context, key string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(l.dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("crear temporal: %w", err)
	}
	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("escribir payload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path(key)); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("guardar payload: %w", err)
	}
	return n, nil
}

// Get abre el payload para lectura en streaming.
func (l *LocalStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(l.path(key))
	if err != nil {
		return nil, fmt.Errorf("abrir payload: %w", err)
	}
	return f, nil
}

// Delete elimina el payload.
func (l *LocalStorage) Delete(_ context.Context, key string) error {
	if err := os.Remove(l.path(key)); err != nil {
		return fmt.Errorf("eliminar payload: %w", err)
	}
	return nil
}
