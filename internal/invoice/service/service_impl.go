package service

import (
	"context"
	"io"
	"net/url"
	"strings"

	clientdomain "github.com/smallbiznis/invoicedesk/internal/client/domain"
	"github.com/smallbiznis/invoicedesk/internal/clock"
	"github.com/smallbiznis/invoicedesk/internal/config"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/format"
	"github.com/smallbiznis/invoicedesk/internal/invoice/render"
	"github.com/smallbiznis/invoicedesk/internal/observability/metrics"
	"github.com/smallbiznis/invoicedesk/internal/providers/email"
	"github.com/smallbiznis/invoicedesk/internal/providers/pdf"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg     config.Config
	Profile *config.BusinessProfileHolder
	Log     *zap.Logger
	Clock   clock.Clock
	Clients clientdomain.Service
	PDF     pdf.Provider
	Email   email.Provider
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	cfg     config.Config
	profile *config.BusinessProfileHolder
	log     *zap.Logger
	clock   clock.Clock
	clients clientdomain.Service
	pdf     pdf.Provider
	email   email.Provider
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		cfg:     p.Cfg,
		profile: p.Profile,
		log:     p.Log.Named("invoice.service"),
		clock:   p.Clock,
		clients: p.Clients,
		pdf:     p.PDF,
		email:   p.Email,
		metrics: p.Metrics,
	}
}

// Compose runs the whole pipeline against an immutable snapshot of the form
// data. Everything up to the returned Document is pure; no output leaves the
// process on error.
func (s *Service) Compose(ctx context.Context, req domain.ComposeRequest) (domain.ComposeResponse, error) {
	doc, _, err := s.compose(ctx, req)
	if err != nil {
		return domain.ComposeResponse{}, err
	}

	s.metrics.RecordInvoiceComposed(ctx, "mailto")
	return domain.ComposeResponse{Document: doc}, nil
}

func (s *Service) ExportPDF(ctx context.Context, req domain.ComposeRequest) (domain.Document, io.Reader, error) {
	doc, profile, err := s.compose(ctx, req)
	if err != nil {
		return domain.Document{}, nil, err
	}

	reader, err := s.pdf.GenerateInvoice(ctx, profile, doc)
	if err != nil {
		s.log.Error("pdf generation failed", zap.String("invoice", doc.Number), zap.Error(err))
		return domain.Document{}, nil, domain.ErrRenderFailed
	}

	s.metrics.RecordInvoiceComposed(ctx, "pdf")
	s.metrics.RecordPDFExport(ctx)
	return doc, reader, nil
}

func (s *Service) SendEmail(ctx context.Context, req domain.SendRequest) (domain.SendResponse, error) {
	if !s.cfg.EmailEnabled() {
		return domain.SendResponse{}, domain.ErrEmailDisabled
	}

	doc, _, err := s.compose(ctx, req.ComposeRequest)
	if err != nil {
		return domain.SendResponse{}, err
	}

	if err := s.email.Send(ctx, []string{doc.To}, doc.Subject, doc.Body()); err != nil {
		s.log.Error("email delivery failed", zap.String("invoice", doc.Number), zap.Error(err))
		return domain.SendResponse{}, err
	}

	s.metrics.RecordInvoiceComposed(ctx, "email")
	s.metrics.RecordEmailSent(ctx)
	s.log.Info("invoice emailed",
		zap.String("invoice", doc.Number),
		zap.String("to", doc.To),
	)

	return domain.SendResponse{Document: doc}, nil
}

func (s *Service) compose(ctx context.Context, req domain.ComposeRequest) (domain.Document, render.Profile, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return domain.Document{}, render.Profile{}, domain.ErrInvalidClient
	}

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return domain.Document{}, render.Profile{}, domain.ErrInvalidClient
	}

	items := domain.CollectLineItems(req.Rows)
	if len(items) == 0 {
		return domain.Document{}, render.Profile{}, domain.ErrNoLineItems
	}

	profile := s.profile.Current()
	totals := domain.ComputeTotals(items, profile.TaxRate)

	now := s.clock.Now()
	template := strings.TrimSpace(s.cfg.InvoiceNumberTemplate)
	if template == "" {
		template = format.DefaultInvoiceNumberTemplate
	}
	number, err := format.InvoiceNumber(template, client.Name, now)
	if err != nil {
		return domain.Document{}, render.Profile{}, err
	}

	renderProfile := render.Profile{
		HeaderLines:    profile.HeaderLines,
		SignatureLines: profile.SignatureLines,
		SubtotalLabel:  profile.SubtotalLabel,
		TaxLabel:       profile.TaxLabel,
		TotalLabel:     profile.TotalLabel,
		ColumnWidth:    profile.ColumnWidth,
	}
	renderer := render.NewRenderer(renderProfile)

	lines := renderer.Render(render.Input{
		Number:   number,
		IssuedAt: now,
		Items:    items,
		Totals:   totals,
	})

	subject := "Tax Invoice " + number
	doc := domain.Document{
		Number:    number,
		Subject:   subject,
		IssueDate: format.Date(now),
		To:        client.Email,
		Lines:     lines,
		Items:     items,
		Totals:    totals,
	}
	doc.MailtoURL = mailtoURL(client.Email, subject, doc.Body())

	return doc, renderProfile, nil
}

// mailtoURL builds the navigation target the browser hands to the operator's
// mail client.
func mailtoURL(to, subject, body string) string {
	return "mailto:" + escape(to) + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// escape percent-encodes like encodeURIComponent: query escaping with
// spaces as %20, never '+', so mail clients decode the body correctly.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
