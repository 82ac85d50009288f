// Package excel serializa el reporte de inventario a un workbook XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appreport "github.com/lbcompany/inventario-api/internal/application/report"
)

const sheetName = "Inventory Report"

// Orden de columnas del artefacto; es parte del contrato del reporte.
var headers = []string{"SKU", "Name", "Category", "Quantity", "UnitCost", "UnitPrice", "LineValue", "LineRevenue"}

var colWidths = []float64{15, 25, 15, 12, 12, 12, 18, 20}

var _ appreport.WorkbookRenderer = (*WorkbookRenderer)(nil)

// WorkbookRenderer implementa report.WorkbookRenderer usando excelize.
type WorkbookRenderer struct{}

// NewWorkbookRenderer construye el renderizador.
func NewWorkbookRenderer() *WorkbookRenderer { return &WorkbookRenderer{} }

// Render produce el workbook en memoria: fila de encabezado, una fila por
// artículo y la fila final "Totals" con las sumas de Quantity, LineValue y
// LineRevenue.
func (g *WorkbookRenderer) Render(_ context.Context, rows []appreport.Row, totals appreport.Totals) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear estilo: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado %s: %w", h, err)
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, colName, colName, colWidths[i])
	}
	if err := f.SetCellStyle(sheetName, "A1", "H1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo de encabezado: %w", err)
	}

	for i, r := range rows {
		n := i + 2
		values := []any{
			r.SKU, r.Name, r.Category, r.Quantity,
			r.UnitCost.InexactFloat64(), r.UnitPrice.InexactFloat64(),
			r.LineValue.InexactFloat64(), r.LineRevenue.InexactFloat64(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, n)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", n, err)
			}
		}
	}

	totalsRow := len(rows) + 2
	totalsCells := map[int]any{
		1: "Totals",
		4: totals.Quantity,
		7: totals.LineValue.InexactFloat64(),
		8: totals.LineRevenue.InexactFloat64(),
	}
	for colIdx, v := range totalsCells {
		cell, _ := excelize.CoordinatesToCellName(colIdx, totalsRow)
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return nil, fmt.Errorf("xlsx: fila de totales: %w", err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, totalsRow)
	last, _ := excelize.CoordinatesToCellName(len(headers), totalsRow)
	if err := f.SetCellStyle(sheetName, first, last, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo de totales: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}
