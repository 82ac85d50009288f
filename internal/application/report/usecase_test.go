package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/application/inventory"
	"github.com/lbcompany/inventario-api/internal/application/report"
	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/infrastructure/excel"
	"github.com/lbcompany/inventario-api/internal/infrastructure/jsondb"
	"github.com/lbcompany/inventario-api/internal/infrastructure/storage"
)

// pdfStub evita renderizar un PDF real en cada test; el contenido del PDF se
// cubre en el paquete del renderizador.
type pdfStub struct{}

func (pdfStub) Render(_ context.Context, _ time.Time, _ []report.Row, _ report.Totals) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type reportFixture struct {
	store       *jsondb.Store
	blobs       *storage.LocalStorage
	inventoryUC *inventory.UseCase
	auditUC     *audit.UseCase
	uc          *report.UseCase
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	store, err := jsondb.NewStore(t.TempDir())
	require.NoError(t, err)
	blobs, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	auditUC := audit.New(store)
	inventoryUC := inventory.New(store, auditUC)
	uc := report.New(inventoryUC, store, blobs, auditUC, excel.NewWorkbookRenderer(), pdfStub{})
	return &reportFixture{store: store, blobs: blobs, inventoryUC: inventoryUC, auditUC: auditUC, uc: uc}
}

func TestGenerate_InventarioVacioNoDejaDocumentos(t *testing.T) {
	fx := newReportFixture(t)
	ctx := context.Background()

	_, err := fx.uc.Generate(ctx, "ana")
	require.ErrorIs(t, err, domain.ErrEmptyInventory)

	docs, err := fx.store.ListAll(ctx, record.Documents)
	require.NoError(t, err)
	assert.Empty(t, docs, "un intento fallido no registra documentos")

	entries, err := fx.auditUC.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_RegistraAmbosArtefactosComoDocumentos(t *testing.T) {
	fx := newReportFixture(t)
	ctx := context.Background()

	_, err := fx.inventoryUC.Create(ctx, "ana", dto.CreateItemRequest{
		SKU: "A1", Name: "Widget", Category: "Tools", Quantity: 10, UnitCost: 2.5, UnitPrice: 5.0,
	})
	require.NoError(t, err)
	_, err = fx.inventoryUC.Create(ctx, "ana", dto.CreateItemRequest{
		SKU: "B2", Name: "Gadget", Category: "Tools", Quantity: 3, UnitCost: 1.0, UnitPrice: 2.0,
	})
	require.NoError(t, err)

	out, err := fx.uc.Generate(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, out.Files, 2)

	wantName := "Inventory_Report_" + time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, wantName+".xlsx", out.Files[0].Name)
	assert.Equal(t, wantName+".pdf", out.Files[1].Name)
	for _, f := range out.Files {
		assert.NotEmpty(t, f.ID)
		assert.Greater(t, f.Size, int64(0))
	}

	// el artefacto queda recuperable por los mecanismos ordinarios de documentos
	rc, err := fx.blobs.Get(ctx, wantName+".xlsx")
	require.NoError(t, err)
	rc.Close()

	entries, err := fx.auditUC.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Generated report "+wantName, entries[0].Action)
}

func TestGenerate_WorkbookTieneEncabezadoFilasYTotales(t *testing.T) {
	fx := newReportFixture(t)
	ctx := context.Background()

	_, err := fx.inventoryUC.Create(ctx, "ana", dto.CreateItemRequest{
		SKU: "A1", Name: "Widget", Category: "Tools", Quantity: 10, UnitCost: 2.5, UnitPrice: 5.0,
	})
	require.NoError(t, err)
	_, err = fx.inventoryUC.Create(ctx, "ana", dto.CreateItemRequest{
		SKU: "B2", Name: "Gadget", Category: "Misc", Quantity: 3, UnitCost: 1.0, UnitPrice: 2.0,
	})
	require.NoError(t, err)

	_, err = fx.uc.Generate(ctx, "ana")
	require.NoError(t, err)

	name := "Inventory_Report_" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	rc, err := fx.blobs.Get(ctx, name)
	require.NoError(t, err)
	defer rc.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventory Report")
	require.NoError(t, err)
	require.Len(t, rows, 4, "encabezado + 2 artículos + totales")

	assert.Equal(t, []string{"SKU", "Name", "Category", "Quantity", "UnitCost", "UnitPrice", "LineValue", "LineRevenue"}, rows[0])
	assert.Equal(t, "A1", rows[1][0])
	assert.Equal(t, "25", rows[1][6])
	assert.Equal(t, "50", rows[1][7])
	assert.Equal(t, "B2", rows[2][0])

	totals := rows[3]
	assert.Equal(t, "Totals", totals[0])
	assert.Equal(t, "13", totals[3])
	assert.Equal(t, "28", totals[6])
	assert.Equal(t, "56", totals[7])
}

func TestGenerate_MismoDiaReemplazaElReporteAnterior(t *testing.T) {
	fx := newReportFixture(t)
	ctx := context.Background()

	_, err := fx.inventoryUC.Create(ctx, "ana", dto.CreateItemRequest{
		SKU: "A1", Name: "Widget", Quantity: 1, UnitCost: 1.0, UnitPrice: 1.0,
	})
	require.NoError(t, err)

	first, err := fx.uc.Generate(ctx, "ana")
	require.NoError(t, err)
	second, err := fx.uc.Generate(ctx, "ana")
	require.NoError(t, err)

	docs, err := fx.store.ListAll(ctx, record.Documents)
	require.NoError(t, err)
	assert.Len(t, docs, 2, "un solo artefacto por formato y por día")

	// gana el último: los ids registrados son los de la segunda corrida
	assert.NotEqual(t, first.Files[0].ID, second.Files[0].ID)
	for _, r := range docs {
		assert.Contains(t, []string{second.Files[0].ID, second.Files[1].ID}, r.ID())
	}
}
