package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	invoicedomain "github.com/smallbiznis/invoicedesk/internal/invoice/domain"
)

type composeInvoiceRequest struct {
	ClientID string                 `json:"client_id"`
	Rows     []invoicedomain.RawRow `json:"rows"`
}

// ComposeInvoice returns the fully composed document, including the mailto
// URL the browser navigates to.
func (s *Server) ComposeInvoice(c *gin.Context) {
	req, ok := bindComposeRequest(c)
	if !ok {
		return
	}

	resp, err := s.invoiceSvc.Compose(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ExportInvoicePDF composes the invoice and streams the rendered PDF as a
// download, named from the client and invoice number.
func (s *Server) ExportInvoicePDF(c *gin.Context) {
	req, ok := bindComposeRequest(c)
	if !ok {
		return
	}

	doc, reader, err := s.invoiceSvc.ExportPDF(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	pdfBytes, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}

	client, err := s.clientSvc.GetByID(c.Request.Context(), req.ClientID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	filename := slug.Make(client.Name+" "+doc.Number) + ".pdf"

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(pdfBytes)))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// EmailInvoice delivers the composed body through the configured SMTP
// provider.
func (s *Server) EmailInvoice(c *gin.Context) {
	req, ok := bindComposeRequest(c)
	if !ok {
		return
	}

	resp, err := s.invoiceSvc.SendEmail(c.Request.Context(), invoicedomain.SendRequest{ComposeRequest: req})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func bindComposeRequest(c *gin.Context) (invoicedomain.ComposeRequest, bool) {
	var req composeInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return invoicedomain.ComposeRequest{}, false
	}

	return invoicedomain.ComposeRequest{
		ClientID: req.ClientID,
		Rows:     req.Rows,
	}, true
}
