// Package report genera el reporte de inventario bajo demanda: una foto
// puntual del inventario convertida en artefactos XLSX y PDF que se registran
// como documentos en el mismo backend activo, recuperables por el listado y
// la descarga ordinarios.
package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/application/inventory"
	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/domain/entity"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/domain/repository"
	"github.com/lbcompany/inventario-api/internal/infrastructure/storage"
)

// UseCase generador de reportes de inventario.
type UseCase struct {
	inventory *inventory.UseCase
	store     repository.RecordStore
	blobs     storage.BlobStorage
	audit     *audit.UseCase
	workbook  WorkbookRenderer
	pdf       PDFRenderer
}

// New construye el caso de uso.
func New(
	inventoryUC *inventory.UseCase,
	store repository.RecordStore,
	blobs storage.BlobStorage,
	auditUC *audit.UseCase,
	workbook WorkbookRenderer,
	pdf PDFRenderer,
) *UseCase {
	return &UseCase{
		inventory: inventoryUC,
		store:     store,
		blobs:     blobs,
		audit:     auditUC,
		workbook:  workbook,
		pdf:       pdf,
	}
}

// Generate produce el reporte del día. El nombre se deriva de la fecha
// (Inventory_Report_<fecha ISO>): regenerar el mismo día reemplaza el
// artefacto anterior, gana el último. Cualquier fallo aborta la operación
// completa sin dejar registros Document parciales: ambos artefactos se
// renderizan y se escriben sus payloads antes de registrar documento alguno.
func (uc *UseCase) Generate(ctx context.Context, actor string) (*dto.ReportResponse, error) {
	items, err := uc.inventory.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyInventory
	}

	rows, totals := BuildRows(items)
	now := time.Now().UTC()
	name := "Inventory_Report_" + now.Format("2006-01-02")

	xlsxBytes, err := uc.workbook.Render(ctx, rows, totals)
	if err != nil {
		return nil, fmt.Errorf("generar workbook: %w", err)
	}
	pdfBytes, err := uc.pdf.Render(ctx, now, rows, totals)
	if err != nil {
		return nil, fmt.Errorf("generar pdf: %w", err)
	}

	artifacts := []struct {
		filename string
		payload  []byte
	}{
		{name + ".xlsx", xlsxBytes},
		{name + ".pdf", pdfBytes},
	}

	// Payloads primero: el registro solo existe si sus bytes ya están confirmados.
	for _, a := range artifacts {
		if _, err := uc.blobs.Put(ctx, a.filename, bytes.NewReader(a.payload)); err != nil {
			return nil, fmt.Errorf("guardar %s: %w", a.filename, err)
		}
	}

	files := make([]dto.DocumentResponse, 0, len(artifacts))
	for _, a := range artifacts {
		if err := uc.replaceSameDay(ctx, a.filename); err != nil {
			return nil, err
		}
		doc := entity.Document{
			Name:     a.filename,
			Filename: a.filename,
			Size:     int64(len(a.payload)),
			Date:     now,
		}
		stored, err := uc.store.Insert(ctx, record.Documents, record.DocumentToRecord(doc))
		if err != nil {
			return nil, fmt.Errorf("registrar %s: %w", a.filename, err)
		}
		saved := record.DocumentFromRecord(stored)
		files = append(files, dto.DocumentResponse{ID: saved.ID, Name: saved.Name, Size: saved.Size, Date: saved.Date})
	}

	if err := uc.audit.Record(ctx, actor, "Generated report "+name); err != nil {
		return nil, err
	}
	return &dto.ReportResponse{Message: "Reporte de inventario generado", Files: files}, nil
}

// replaceSameDay retira el registro previo con el mismo handle para que el
// listado muestre un solo artefacto por formato y por día.
func (uc *UseCase) replaceSameDay(ctx context.Context, filename string) error {
	recs, err := uc.store.ListAll(ctx, record.Documents)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if record.DocumentFromRecord(r).Filename == filename {
			if _, err := uc.store.DeleteByID(ctx, record.Documents, r.ID()); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildRows arma las filas del reporte y sus totales a partir de la foto del
// inventario.
func BuildRows(items []entity.InventoryItem) ([]Row, Totals) {
	rows := make([]Row, 0, len(items))
	totals := Totals{LineValue: decimal.Zero, LineRevenue: decimal.Zero}
	for _, it := range items {
		r := Row{
			SKU:         it.SKU,
			Name:        it.Name,
			Category:    it.Category,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			UnitPrice:   it.UnitPrice,
			LineValue:   it.LineValue(),
			LineRevenue: it.LineRevenue(),
		}
		rows = append(rows, r)
		totals.Quantity += r.Quantity
		totals.LineValue = totals.LineValue.Add(r.LineValue)
		totals.LineRevenue = totals.LineRevenue.Add(r.LineRevenue)
	}
	return rows, totals
}
