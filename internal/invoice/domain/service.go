package domain

import (
	"context"
	"errors"
	"io"
)

// ComposeRequest identifies the client and carries the raw form rows.
type ComposeRequest struct {
	ClientID string   `json:"client_id"`
	Rows     []RawRow `json:"rows"`
}

// ComposeResponse wraps the composed document.
type ComposeResponse struct {
	Document Document `json:"document"`
}

// SendRequest composes an invoice and hands the body to the email provider.
type SendRequest struct {
	ComposeRequest
}

// SendResponse reports the composed document that was sent.
type SendResponse struct {
	Document Document `json:"document"`
}

type Service interface {
	// Compose runs the full pipeline: client lookup, line-item collection,
	// totals, text layout, mailto URL. It emits nothing on error.
	Compose(context.Context, ComposeRequest) (ComposeResponse, error)

	// ExportPDF composes the invoice and renders it through the document
	// provider. The returned reader streams the finished PDF.
	ExportPDF(context.Context, ComposeRequest) (Document, io.Reader, error)

	// SendEmail composes the invoice and delivers the plain-text body via
	// the configured email provider.
	SendEmail(context.Context, SendRequest) (SendResponse, error)
}

var (
	ErrInvalidClient  = errors.New("invalid_client")
	ErrNoLineItems    = errors.New("no_line_items")
	ErrEmailDisabled  = errors.New("email_disabled")
	ErrRenderFailed   = errors.New("render_failed")
	ErrInvalidRequest = errors.New("invalid_request")
)
