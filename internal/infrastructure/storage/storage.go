// Package storage maneja los bytes de los documentos, separados de sus
// metadatos: el registro Document guarda solo el handle (filename) y este
// paquete es el único dueño del payload.
package storage

import (
	"context"
	"io"
)

// BlobStorage puerto de almacenamiento de payloads.
type BlobStorage interface {
	// Put escribe el contenido bajo la clave y devuelve los bytes escritos.
	// Una clave existente se reemplaza (los reportes del mismo día pisan al anterior).
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
	// Get abre el contenido para lectura en streaming.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete elimina el payload de la clave.
	Delete(ctx context.Context, key string) error
}
