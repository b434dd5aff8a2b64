// Package pdf genera con Maroto v2 la factura imprimible y el reporte de ventas.
//
// Layout de la factura (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + contacto     │  N° Factura + Fechas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Referencia + Forma de pago                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"golang.org/x/text/language"

	"github.com/jhoicas/supermack-billing/internal/application/analytics"
	appbilling "github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var (
	_ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)
	_ analytics.ReportPDFGenerator   = (*MarotoPDFGenerator)(nil)
)

// MarotoPDFGenerator implementa la factura y el reporte de ventas usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// GenerateInvoicePDF genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, d appbilling.InvoiceDocument) ([]byte, error) {
	if d.Invoice == nil {
		return nil, fmt.Errorf("pdf: factura nil")
	}
	inv := d.Invoice
	fmtr := formatterFor(d.Currency)

	m := newDocument("Invoice "+inv.Number, nonEmpty(d.Profile.CompanyName, "Super Mack"))

	m.AddRows(headerRow(inv, d.Profile))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(inv, fmtr)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv, d.TaxType, fmtr))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y N° Factura + fechas (der).
func headerRow(inv *entity.Invoice, profile entity.BusinessProfile) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(nonEmpty(profile.CompanyName, "Super Mack"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(profile.Address, "-"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				nonEmpty(profile.Phone, "-"),
				nonEmpty(profile.Email, "-"),
			), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Issue date: "+inv.IssueDate.Format(entity.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Due date: "+inv.DueDate.Format(entity.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

func customerRow(inv *entity.Invoice) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Reference: %s   |   Payment: %s   |   Amounts: %s",
				nonEmpty(inv.Reference, "-"),
				inv.PaymentType,
				inv.AmountType,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 6, align.Left),
		h("Unit price", 2, align.Right),
		h("Total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea; las facturas manuales muestran una sola fila con el total.
func tableDetailRows(inv *entity.Invoice, fmtr *money.Formatter) []core.Row {
	if len(inv.Lines) == 0 {
		return []core.Row{detailRow("1", nonEmpty(inv.Reference, "Invoice "+inv.Number), fmtr.Plain(inv.Total), fmtr.Plain(inv.Total))}
	}
	result := make([]core.Row, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		result = append(result, detailRow(
			strconv.FormatInt(l.Quantity, 10),
			l.ProductName,
			fmtr.Plain(l.UnitPrice),
			fmtr.Plain(l.LineTotal),
		))
	}
	return result
}

func detailRow(qty, description, unit, total string) core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New(qty, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(6).Add(text.New(description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(unit, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New(total, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(inv *entity.Invoice, taxType string, fmtr *money.Formatter) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	subtotal, tax := inv.Subtotal, inv.Tax
	if len(inv.Lines) == 0 {
		subtotal, tax = inv.Total, decimal.Zero
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label(fmt.Sprintf("Tax (%s):", nonEmpty(taxType, entity.TaxTypeNone)), 7),
			label("TOTAL:", 13),
		),
		col.New(3).Add(
			value(fmtr.Plain(subtotal), 1),
			value(fmtr.Plain(tax), 7),
			grand(fmtr.Format(inv.Total), 13),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatterFor usa USD si el código no es ISO 4217 válido.
func formatterFor(currency string) *money.Formatter {
	if f, err := money.NewFormatter(currency, language.English); err == nil {
		return f
	}
	return money.MustFormatter("USD")
}
