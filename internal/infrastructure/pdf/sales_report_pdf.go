package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/supermack-billing/internal/application/analytics"
)

// GenerateSalesReportPDF tabla Date | Customer | Product | Total con el total general al pie.
func (g *MarotoPDFGenerator) GenerateSalesReportPDF(_ context.Context, r analytics.SalesReport) ([]byte, error) {
	if r.Report == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	fmtr := formatterFor(r.Currency)
	m := newDocument(r.Title, nonEmpty(r.CompanyName, "Super Mack"))

	m.AddRows(row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(r.CompanyName, "Super Mack"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated: "+r.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(filterLabel(r), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	m.AddRows(row.New(8).Add(
		h("Date", 2, align.Left),
		h("Customer", 4, align.Left),
		h("Product", 3, align.Left),
		h("Total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary}))

	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, rr := range r.Report.Rows {
		m.AddRows(row.New(6).Add(
			cell(rr.Date, 2, align.Left),
			cell(rr.Customer, 4, align.Left),
			cell(rr.Product, 3, align.Left),
			cell(fmtr.Plain(rr.Total), 3, align.Right),
		))
	}
	if len(r.Report.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New("No sales found", props.Text{
			Size: 9, Align: align.Center, Top: 2, Color: colorGray,
		}))))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(9).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 1})),
		col.New(3).Add(text.New(fmtr.Format(r.Report.GrandTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 1,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func filterLabel(r analytics.SalesReport) string {
	customer := nonEmpty(r.Report.Customer, "All")
	product := nonEmpty(r.Report.Product, "All")
	return fmt.Sprintf("Customer: %s   |   Product: %s", customer, product)
}
