// Package inventory implementa las operaciones de dominio sobre los artículos
// del inventario, por encima del backend seleccionado al arranque.
package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/domain/entity"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/domain/repository"
)

// UseCase CRUD de inventario. Los campos derivados (lineValue, lineRevenue)
// se calculan al leer y siempre reflejan quantity/cost/price vigentes.
type UseCase struct {
	store repository.RecordStore
	audit *audit.UseCase
}

// New construye el caso de uso.
func New(store repository.RecordStore, auditUC *audit.UseCase) *UseCase {
	return &UseCase{store: store, audit: auditUC}
}

// Create normaliza los campos numéricos (ausentes o malformados valen 0),
// estampa createdAt, persiste y deja bitácora.
func (uc *UseCase) Create(ctx context.Context, actor string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	it := entity.InventoryItem{
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  record.CoerceInt(in.Quantity),
		UnitCost:  record.CoerceDecimal(in.UnitCost),
		UnitPrice: record.CoerceDecimal(in.UnitPrice),
		CreatedAt: time.Now().UTC(),
	}
	stored, err := uc.store.Insert(ctx, record.Inventory, record.ItemToRecord(it))
	if err != nil {
		return nil, err
	}
	item := record.ItemFromRecord(stored)
	if err := uc.audit.Record(ctx, actor, "Added inventory item: "+item.Name); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica un parche superficial (los campos nil no se tocan), estampa
// updatedAt y deja bitácora con el nombre posterior al merge. ErrNotFound se
// propaga sin reintentos y sin entrada de bitácora.
func (uc *UseCase) Update(ctx context.Context, actor, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	patch := record.Record{}
	if in.SKU != nil {
		patch["sku"] = *in.SKU
	}
	if in.Name != nil {
		patch["name"] = *in.Name
	}
	if in.Category != nil {
		patch["category"] = *in.Category
	}
	if in.Quantity != nil {
		patch["quantity"] = record.CoerceInt(in.Quantity)
	}
	if in.UnitCost != nil {
		patch["unitCost"] = record.CoerceDecimal(in.UnitCost).InexactFloat64()
	}
	if in.UnitPrice != nil {
		patch["unitPrice"] = record.CoerceDecimal(in.UnitPrice).InexactFloat64()
	}
	patch["updatedAt"] = time.Now().UTC().Format(time.RFC3339Nano)

	merged, err := uc.store.UpdateByID(ctx, record.Inventory, id, patch)
	if err != nil {
		return nil, err
	}
	item := record.ItemFromRecord(merged)
	if err := uc.audit.Record(ctx, actor, "Updated inventory: "+item.Name); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina el artículo y deja bitácora con su nombre. ErrNotFound se
// propaga sin entrada de bitácora.
func (uc *UseCase) Delete(ctx context.Context, actor, id string) (*dto.ItemResponse, error) {
	removed, err := uc.store.DeleteByID(ctx, record.Inventory, id)
	if err != nil {
		return nil, err
	}
	item := record.ItemFromRecord(removed)
	if err := uc.audit.Record(ctx, actor, "Deleted inventory: "+item.Name); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List devuelve todos los artículos con sus derivados calculados al leer.
func (uc *UseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := uc.Items(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Items devuelve las entidades crudas. Es la foto puntual que consume el
// generador de reportes.
func (uc *UseCase) Items(ctx context.Context) ([]entity.InventoryItem, error) {
	recs, err := uc.store.ListAll(ctx, record.Inventory)
	if err != nil {
		return nil, err
	}
	items := make([]entity.InventoryItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, record.ItemFromRecord(r))
	}
	return items, nil
}

// Summary totales del inventario para el dashboard, calculados sobre la misma
// foto que List.
func (uc *UseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	items, err := uc.Items(ctx)
	if err != nil {
		return nil, err
	}
	sum := dto.SummaryResponse{
		TotalItems:   len(items),
		TotalValue:   decimal.Zero,
		TotalRevenue: decimal.Zero,
	}
	for _, it := range items {
		sum.TotalQuantity += it.Quantity
		sum.TotalValue = sum.TotalValue.Add(it.LineValue())
		sum.TotalRevenue = sum.TotalRevenue.Add(it.LineRevenue())
	}
	return &sum, nil
}

func toItemResponse(it entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          it.ID,
		SKU:         it.SKU,
		Name:        it.Name,
		Category:    it.Category,
		Quantity:    it.Quantity,
		UnitCost:    it.UnitCost,
		UnitPrice:   it.UnitPrice,
		LineValue:   it.LineValue(),
		LineRevenue: it.LineRevenue(),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
