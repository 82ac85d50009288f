package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Row una fila del reporte tabular, en el orden de columnas del artefacto:
// SKU, Name, Category, Quantity, UnitCost, UnitPrice, LineValue, LineRevenue.
type Row struct {
	SKU         string
	Name        string
	Category    string
	Quantity    int64
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineValue   decimal.Decimal
	LineRevenue decimal.Decimal
}

// Totals fila final del reporte: suma de Quantity, LineValue y LineRevenue.
type Totals struct {
	Quantity    int64
	LineValue   decimal.Decimal
	LineRevenue decimal.Decimal
}

// WorkbookRenderer serializa la tabla a un workbook (XLSX) en memoria.
type WorkbookRenderer interface {
	Render(ctx context.Context, rows []Row, totals Totals) ([]byte, error)
}

// PDFRenderer serializa la tabla a la representación PDF del reporte.
type PDFRenderer interface {
	Render(ctx context.Context, date time.Time, rows []Row, totals Totals) ([]byte, error)
}
