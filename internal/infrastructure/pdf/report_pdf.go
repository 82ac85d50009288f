// Package pdf genera la representación PDF del reporte de inventario usando
// Maroto v2: encabezado con fecha, tabla de artículos y bloque de totales.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/lbcompany/inventario-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appreport.PDFRenderer = (*ReportRenderer)(nil)

// ReportRenderer implementa report.PDFRenderer usando Maroto v2.
type ReportRenderer struct{}

// NewReportRenderer construye el renderizador.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (g *ReportRenderer) Render(_ context.Context, date time.Time, rows []appreport.Row, totals appreport.Totals) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(date)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(totals)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: título centrado y fecha del reporte.
func headerRows(date time.Time) []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New("Inventory Report", props.Text{
					Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Align: align.Center,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Report Date: "+date.Format("2006-01-02"), props.Text{
					Size: 9, Color: colorGray, Align: align.Center,
				}),
			),
		),
	}
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 8}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", bold)),
		col.New(3).Add(text.New("Name", bold)),
		col.New(2).Add(text.New("Category", bold)),
		col.New(1).Add(text.New("Qty", boldRight)),
		col.New(1).Add(text.New("Cost", boldRight)),
		col.New(1).Add(text.New("Price", boldRight)),
		col.New(1).Add(text.New("Value", boldRight)),
		col.New(1).Add(text.New("Revenue", boldRight)),
	)
}

func tableDetailRow(r appreport.Row) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New(r.SKU, cell)),
		col.New(3).Add(text.New(r.Name, cell)),
		col.New(2).Add(text.New(r.Category, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), cellRight)),
		col.New(1).Add(text.New(r.UnitCost.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(r.UnitPrice.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(r.LineValue.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(r.LineRevenue.StringFixed(2), cellRight)),
	)
}

// totalsRows: cantidades y montos agregados del inventario completo.
func totalsRows(t appreport.Totals) []core.Row {
	label := props.Text{Style: fontstyle.Bold, Size: 9}
	value := props.Text{Size: 9, Align: align.Right}
	return []core.Row{
		row.New(6).Add(
			col.New(9).Add(text.New("Total Quantity", label)),
			col.New(3).Add(text.New(fmt.Sprintf("%d", t.Quantity), value)),
		),
		row.New(6).Add(
			col.New(9).Add(text.New("Total Inventory Value", label)),
			col.New(3).Add(text.New(t.LineValue.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(9).Add(text.New("Total Potential Revenue", label)),
			col.New(3).Add(text.New(t.LineRevenue.StringFixed(2), value)),
		),
	}
}
