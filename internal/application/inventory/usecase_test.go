package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/application/inventory"
	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/infrastructure/jsondb"
)

func newInventoryUC(t *testing.T) (*inventory.UseCase, *audit.UseCase) {
	t.Helper()
	store, err := jsondb.NewStore(t.TempDir())
	require.NoError(t, err)
	auditUC := audit.New(store)
	return inventory.New(store, auditUC), auditUC
}

func strPtr(s string) *string { return &s }

func TestCreate_CalculaDerivadosYDejaBitacora(t *testing.T) {
	uc, auditUC := newInventoryUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "ana", dto.CreateItemRequest{
		SKU:       "A1",
		Name:      "Widget",
		Category:  "Tools",
		Quantity:  float64(10),
		UnitCost:  2.5,
		UnitPrice: 5.0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	items, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, "A1", got.SKU)
	assert.Equal(t, int64(10), got.Quantity)
	assert.True(t, got.LineValue.Equal(decimal.NewFromFloat(25.0)), "lineValue = quantity * unitCost")
	assert.True(t, got.LineRevenue.Equal(decimal.NewFromFloat(50.0)), "lineRevenue = quantity * unitPrice")
	assert.False(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.UpdatedAt)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ana", entries[0].User)
	assert.Equal(t, "Added inventory item: Widget", entries[0].Action)
}

func TestCreate_NumericosMalformadosValenCero(t *testing.T) {
	uc, _ := newInventoryUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "ana", dto.CreateItemRequest{
		SKU:      "B2",
		Name:     "Gadget",
		Quantity: "no-numero",
		UnitCost: nil,
		// UnitPrice ausente
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), created.Quantity)
	assert.True(t, created.UnitCost.IsZero())
	assert.True(t, created.UnitPrice.IsZero())
	assert.True(t, created.LineValue.IsZero())
	assert.True(t, created.LineRevenue.IsZero())
}

func TestUpdate_MergeSuperficialYEstampaUpdatedAt(t *testing.T) {
	uc, auditUC := newInventoryUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "ana", dto.CreateItemRequest{
		SKU: "A1", Name: "Widget", Category: "Tools",
		Quantity: 10, UnitCost: 2.5, UnitPrice: 5.0,
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, "ana", created.ID, dto.UpdateItemRequest{
		Quantity: float64(4),
	})
	require.NoError(t, err)

	// solo quantity cambió; el resto queda intacto y los derivados se recalculan
	assert.Equal(t, int64(4), updated.Quantity)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, "Tools", updated.Category)
	assert.True(t, updated.LineValue.Equal(decimal.NewFromFloat(10.0)))
	assert.True(t, updated.LineRevenue.Equal(decimal.NewFromFloat(20.0)))
	require.NotNil(t, updated.UpdatedAt)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Updated inventory: Widget", entries[0].Action)
}

func TestUpdate_RenombrarRegistraElNombrePosterior(t *testing.T) {
	uc, auditUC := newInventoryUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "ana", dto.CreateItemRequest{SKU: "A1", Name: "Widget"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "ana", created.ID, dto.UpdateItemRequest{Name: strPtr("Widget Pro")})
	require.NoError(t, err)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Updated inventory: Widget Pro", entries[0].Action)
}

func TestUpdate_IDInexistenteNoDejaBitacora(t *testing.T) {
	uc, auditUC := newInventoryUC(t)
	ctx := context.Background()

	_, err := uc.Update(ctx, "ana", "no-existe", dto.UpdateItemRequest{Name: strPtr("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "una mutación fallida no genera entrada")
}

func TestDelete_RetiraElItemYDejaBitacora(t *testing.T) {
	uc, auditUC := newInventoryUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "ana", dto.CreateItemRequest{SKU: "A1", Name: "Widget"})
	require.NoError(t, err)

	removed, err := uc.Delete(ctx, "ana", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	items, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Deleted inventory: Widget", entries[0].Action)
}

func TestDelete_IDInexistenteNoDejaBitacora(t *testing.T) {
	uc, auditUC := newInventoryUC(t)
	ctx := context.Background()

	_, err := uc.Delete(ctx, "ana", "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSummary_SumaSobreLaMismaFoto(t *testing.T) {
	uc, _ := newInventoryUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "ana", dto.CreateItemRequest{SKU: "A1", Name: "Widget", Quantity: 10, UnitCost: 2.5, UnitPrice: 5.0})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "ana", dto.CreateItemRequest{SKU: "B2", Name: "Gadget", Quantity: 3, UnitCost: 1.0, UnitPrice: 2.0})
	require.NoError(t, err)

	sum, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalItems)
	assert.Equal(t, int64(13), sum.TotalQuantity)
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromFloat(28.0)))
	assert.True(t, sum.TotalRevenue.Equal(decimal.NewFromFloat(56.0)))
}
