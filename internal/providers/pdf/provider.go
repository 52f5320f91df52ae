package pdf

import (
	"context"
	"io"

	invoicedomain "github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/render"
)

// Provider renders a composed invoice document into a finished PDF. The
// composer supplies already-computed labels, amounts, and totals; nothing is
// recalculated here.
type Provider interface {
	GenerateInvoice(ctx context.Context, profile render.Profile, doc invoicedomain.Document) (io.Reader, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) GenerateInvoice(ctx context.Context, profile render.Profile, doc invoicedomain.Document) (io.Reader, error) {
	return nil, nil
}
