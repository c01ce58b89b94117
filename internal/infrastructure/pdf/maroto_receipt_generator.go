// Package pdf implementa la generación del comprobante diario de fichajes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del empleado  │  Departamento + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Hora | Tipo | Informe                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: horas trabajadas (turnos cerrados)                   │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fichaje-api/internal/application/clock"
	"github.com/jhoicas/fichaje-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 120, Blue: 60}
	colorRed     = &props.Color{Red: 160, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ clock.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa clock.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateDayReceipt genera el comprobante del día y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateDayReceipt(
	_ context.Context,
	user *entity.User,
	department *entity.Department,
	day time.Time,
	events []*entity.ClockEvent,
	workedHours decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de fichajes", true).
		WithAuthor(user.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(user, department, day))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(events) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Sin fichajes registrados este día.", props.Text{
				Size: 9, Color: colorGray, Style: fontstyle.Italic, Top: 2,
			})),
		))
	}
	for _, ev := range events {
		m.AddRows(eventRow(ev))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(workedHours))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del empleado (izq), departamento y fecha (der).
func headerRow(user *entity.User, department *entity.Department, day time.Time) core.Row {
	deptName := ""
	if department != nil {
		deptName = department.Name
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(user.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("REGISTRO DE FICHAJES", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(deptName, props.Text{
				Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(day.Format("02/01/2006"), props.Text{
				Size: 10, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Hora", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(8).Add(text.New("Informe", header)),
	)
}

func eventRow(ev *entity.ClockEvent) core.Row {
	tipoColor := colorGreen
	if ev.Type == entity.EventTypeSAIDA {
		tipoColor = colorRed
	}
	report := ""
	if ev.Report != nil {
		report = *ev.Report
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(ev.CreatedAt.Format("15:04:05"), props.Text{Size: 9, Top: 1})),
		col.New(2).Add(text.New(ev.Type, props.Text{Size: 9, Top: 1, Style: fontstyle.Bold, Color: tipoColor})),
		col.New(8).Add(text.New(report, props.Text{Size: 8, Top: 1, Color: colorGray})),
	)
}

func totalRow(workedHours decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL HORAS (turnos cerrados)", props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2,
		})),
		col.New(4).Add(text.New(workedHours.StringFixed(2)+" h", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}
