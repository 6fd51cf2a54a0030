// Package pdf implementa la generación del reporte PDF de movimientos de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: entradas / salidas / totales por tipo              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | SKU | Tipo | Cant | P.Unit | Ref  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
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

	"github.com/jhoicas/sioms-api/internal/application/reports"
	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.MovementPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(
	_ context.Context,
	from, to time.Time,
	summary *entity.MovementSummary,
	lines []reports.ReportLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Movimientos de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte y rango de fechas.
func headerRow(from, to time.Time) core.Row {
	rango := from.Format("02/01/2006") + " — " + to.Format("02/01/2006")
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE MOVIMIENTOS DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Periodo: "+rango, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRows: bloque de totales del rango.
func summaryRows(summary *entity.MovementSummary) []core.Row {
	rows := []core.Row{
		row.New(12).Add(
			col.New(3).Add(
				text.New("Movimientos", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New(fmt.Sprintf("%d", summary.TotalMovements), props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			),
			col.New(3).Add(
				text.New("Unidades entrantes", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New(fmt.Sprintf("%d", summary.TotalInQuantity), props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			),
			col.New(3).Add(
				text.New("Unidades salientes", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New(fmt.Sprintf("%d", summary.TotalOutQuantity), props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			),
			col.New(3).Add(
				text.New("Valor entrada / salida", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New("$"+summary.TotalInValue.StringFixed(0)+" / $"+summary.TotalOutValue.StringFixed(0),
					props.Text{Size: 9, Top: 6}),
			),
		),
	}

	// Totales por tipo en orden estable
	types := make([]string, 0, len(summary.MovementsByType))
	for t := range summary.MovementsByType {
		types = append(types, t)
	}
	sort.Strings(types)
	porTipo := ""
	for i, t := range types {
		if i > 0 {
			porTipo += "   |   "
		}
		porTipo += fmt.Sprintf("%s: %d", t, summary.MovementsByType[t])
	}
	if porTipo != "" {
		rows = append(rows, row.New(7).Add(
			col.New(12).Add(
				text.New("Unidades por tipo: "+porTipo, props.Text{Size: 8, Color: colorGray, Top: 1}),
			),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de detalle.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 3, align.Left),
		h("SKU", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("P.Unit.", 1, align.Right),
		h("Referencia", 2, align.Left),
	)
}

// tableDetailRows: una fila por movimiento.
func tableDetailRows(lines []reports.ReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		precio := "—"
		if l.UnitPrice != nil {
			precio = "$" + l.UnitPrice.StringFixed(0)
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(l.MovementDate.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(l.ProductName, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(l.SKU, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(l.Type, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(precio, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(nonEmpty(l.Reference, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
