// Package pdf implementa la generación del reporte de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas (+ vendedor si aplica)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Cant | P.Unit | Total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/almacen-ventas/internal/application/reportes"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReporteGenerator implementa reportes.VentasPDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReporteVentas genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteVentas(_ context.Context, reporte *reportes.ReporteVentas) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, fila := range reporte.Filas {
		m.AddRows(filaRow(fila))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(reporte))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y rango de fechas más vendedor (der).
func headerRow(reporte *reportes.ReporteVentas) core.Row {
	rango := fmt.Sprintf("%s - %s",
		reporte.Desde.Format("02/01/2006"), reporte.Hasta.Format("02/01/2006"))
	subtitulo := "Todas las ventas"
	if reporte.VendedorID != nil {
		subtitulo = fmt.Sprintf("Vendedor #%d", *reporte.VendedorID)
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitulo, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", estilo)),
		col.New(5).Add(text.New("Producto", estilo)),
		col.New(1).Add(text.New("Cant.", alignRight(estilo))),
		col.New(2).Add(text.New("P. Unit", alignRight(estilo))),
		col.New(2).Add(text.New("Total", alignRight(estilo))),
	)
}

func filaRow(fila reportes.FilaReporte) core.Row {
	estilo := props.Text{Size: 8}
	return row.New(6).Add(
		col.New(2).Add(text.New(fila.Fecha.Format("02/01/2006"), estilo)),
		col.New(5).Add(text.New(fila.Producto, estilo)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", fila.Cantidad), alignRight(estilo))),
		col.New(2).Add(text.New("$"+fila.PrecioUnitario.StringFixed(2), alignRight(estilo))),
		col.New(2).Add(text.New("$"+fila.Total.StringFixed(2), alignRight(estilo))),
	)
}

func totalRow(reporte *reportes.ReporteVentas) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New(fmt.Sprintf("%d ventas", len(reporte.Filas)), props.Text{
			Size: 9, Color: colorGray, Top: 2,
		})),
		col.New(4).Add(text.New("TOTAL: $"+reporte.TotalGeneral.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}

func alignRight(t props.Text) props.Text {
	t.Align = align.Right
	return t
}
