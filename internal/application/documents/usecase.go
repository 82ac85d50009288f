// Package documents maneja los documentos almacenados: uploads del usuario y
// artefactos generados por el sistema. El registro Document y su payload se
// mantienen consistentes: el registro solo se crea después de confirmar la
// escritura del payload, y al borrar, el registro cae primero y el payload se
// elimina best-effort.
package documents

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/domain/entity"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/domain/repository"
	"github.com/lbcompany/inventario-api/internal/infrastructure/storage"
	"github.com/lbcompany/inventario-api/pkg/logger"
)

// UseCase casos de uso de documentos.
type UseCase struct {
	store repository.RecordStore
	blobs storage.BlobStorage
	audit *audit.UseCase
	log   *logger.Logger
}

// New construye el caso de uso.
func New(store repository.RecordStore, blobs storage.BlobStorage, auditUC *audit.UseCase, log *logger.Logger) *UseCase {
	return &UseCase{store: store, blobs: blobs, audit: auditUC, log: log}
}

// Upload guarda el payload, registra el Document y deja bitácora. Si el
// registro falla después de escribir el payload, se intenta retirar el blob
// para no dejar huérfanos evitables.
func (uc *UseCase) Upload(ctx context.Context, actor, originalName string, r io.Reader) (*dto.DocumentResponse, error) {
	filename := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + sanitizeName(originalName)

	size, err := uc.blobs.Put(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("guardar payload: %w", err)
	}

	doc := entity.Document{
		Name:     originalName,
		Filename: filename,
		Size:     size,
		Date:     time.Now().UTC(),
	}
	stored, err := uc.store.Insert(ctx, record.Documents, record.DocumentToRecord(doc))
	if err != nil {
		if delErr := uc.blobs.Delete(ctx, filename); delErr != nil {
			uc.log.Warn().Err(delErr).Str("filename", filename).Msg("no se pudo revertir el payload tras fallo de registro")
		}
		return nil, err
	}
	saved := record.DocumentFromRecord(stored)
	if err := uc.audit.Record(ctx, actor, "Uploaded document: "+saved.Name); err != nil {
		return nil, err
	}
	return toDocumentResponse(saved), nil
}

// List devuelve los metadatos de todos los documentos.
func (uc *UseCase) List(ctx context.Context) ([]dto.DocumentResponse, error) {
	recs, err := uc.store.ListAll(ctx, record.Documents)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, *toDocumentResponse(record.DocumentFromRecord(r)))
	}
	return out, nil
}

// Download abre el payload del documento para streaming. La descarga es una
// lectura: no deja bitácora.
func (uc *UseCase) Download(ctx context.Context, id string) (*entity.Document, io.ReadCloser, error) {
	doc, err := uc.findByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := uc.blobs.Get(ctx, doc.Filename)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir payload de %s: %w", doc.Name, err)
	}
	return doc, rc, nil
}

// Delete elimina el registro y luego el payload. Si el payload falla (por
// ejemplo ya no existe en disco) la eliminación del registro se mantiene: se
// registra la advertencia y la operación reporta éxito con su única entrada
// de bitácora.
func (uc *UseCase) Delete(ctx context.Context, actor, id string) error {
	removed, err := uc.store.DeleteByID(ctx, record.Documents, id)
	if err != nil {
		return err
	}
	doc := record.DocumentFromRecord(removed)
	if doc.Filename != "" {
		if err := uc.blobs.Delete(ctx, doc.Filename); err != nil {
			uc.log.Warn().Err(err).Str("filename", doc.Filename).Msg("no se pudo eliminar el payload del documento")
		}
	}
	return uc.audit.Record(ctx, actor, "Deleted document: "+doc.Name)
}

// findByID busca sobre el listado completo: el contrato del store no tiene
// lectura puntual y las colecciones de documentos son pequeñas.
func (uc *UseCase) findByID(ctx context.Context, id string) (*entity.Document, error) {
	recs, err := uc.store.ListAll(ctx, record.Documents)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		if r.ID() == id {
			doc := record.DocumentFromRecord(r)
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// sanitizeName deja el nombre apto como handle: espacios a guiones bajos,
// separadores de ruta fuera.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "archivo"
	}
	return name
}

func toDocumentResponse(d entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:   d.ID,
		Name: d.Name,
		Size: d.Size,
		Date: d.Date,
	}
}
