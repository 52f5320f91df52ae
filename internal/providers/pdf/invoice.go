package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	invoicedomain "github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/format"
	"github.com/smallbiznis/invoicedesk/internal/invoice/render"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

// GenerateInvoice maps each logical line of the composed document to a
// positioned text draw: header block, number/date, one row per item with the
// amount right-aligned, totals, signature. Amounts use plain glyphs; the
// monospace-safe table is an email concern.
func (p *PDFProvider) GenerateInvoice(ctx context.Context, profile render.Profile, doc invoicedomain.Document) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Business header
	for i, line := range profile.HeaderLines {
		style := fontstyle.Normal
		size := 10.0
		if i == 0 {
			style = fontstyle.Bold
			size = 16
		}
		m.AddRow(8, text.NewCol(12, line, props.Text{
			Size:  size,
			Style: style,
			Align: align.Left,
		}))
	}

	// Invoice number and issue date
	m.AddRow(12,
		text.NewCol(6, "Tax Invoice "+doc.Number, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Top:   4,
		}),
		text.NewCol(6, "Date: "+doc.IssueDate, props.Text{
			Size:  10,
			Top:   4,
			Align: align.Right,
		}),
	)

	// Items
	for _, item := range doc.Items {
		m.AddRow(8,
			text.NewCol(9, item.Label, props.Text{Size: 10}),
			text.NewCol(3, format.MoneyWithSymbol(item.Amount), props.Text{Size: 10, Align: align.Right}),
		)
	}

	// Totals
	m.AddRow(10,
		col.New(6),
		text.NewCol(3, profile.SubtotalLabel, props.Text{Size: 10, Top: 4}),
		text.NewCol(3, format.MoneyWithSymbol(doc.Totals.Subtotal), props.Text{Size: 10, Top: 4, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(6),
		text.NewCol(3, profile.TaxLabel, props.Text{Size: 10}),
		text.NewCol(3, format.MoneyWithSymbol(doc.Totals.Tax), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(6),
		text.NewCol(3, profile.TotalLabel, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, format.MoneyWithSymbol(doc.Totals.Total), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)

	// Signature block
	for _, line := range profile.SignatureLines {
		m.AddRow(6, text.NewCol(12, line, props.Text{Size: 10}))
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(generated.GetBytes()), nil
}
