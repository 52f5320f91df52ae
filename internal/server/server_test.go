package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	clientdomain "github.com/smallbiznis/invoicedesk/internal/client/domain"
	clientservice "github.com/smallbiznis/invoicedesk/internal/client/service"
	"github.com/smallbiznis/invoicedesk/internal/clock"
	"github.com/smallbiznis/invoicedesk/internal/config"
	invoicedomain "github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	invoiceservice "github.com/smallbiznis/invoicedesk/internal/invoice/service"
	"github.com/smallbiznis/invoicedesk/internal/providers/email"
	"github.com/smallbiznis/invoicedesk/internal/providers/pdf"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	cfg := config.Config{}
	clientSvc := clientservice.New(clientservice.Params{Log: zap.NewNop(), GenID: node})
	invoiceSvc := invoiceservice.New(invoiceservice.Params{
		Cfg:     cfg,
		Profile: config.StaticBusinessProfile(config.DefaultBusinessProfile()),
		Log:     zap.NewNop(),
		Clock:   clock.NewFakeClock(time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)),
		Clients: clientSvc,
		PDF:     pdf.New(),
		Email:   &email.NoOpProvider{},
	})

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	srv := NewServer(ServerParams{
		Gin:        r,
		Cfg:        cfg,
		ClientSvc:  clientSvc,
		InvoiceSvc: invoiceSvc,
	})
	srv.RegisterRoutes()
	return srv
}

func doRequest(srv *Server, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func importClients(t *testing.T, srv *Server, csv string) []clientdomain.Client {
	t.Helper()

	w := doRequest(srv, http.MethodPost, "/api/clients/import", "text/csv", []byte(csv))
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data clientdomain.LoadResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data.Clients
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body errorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	if len(body.Error.Errors) > 0 {
		return body.Error.Errors[0].Code
	}
	return body.Error.Type
}

func composeBody(t *testing.T, clientID string, rows []invoicedomain.RawRow) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"client_id": clientID,
		"rows":      rows,
	})
	assert.NoError(t, err)
	return payload
}

func standardRows() []invoicedomain.RawRow {
	return []invoicedomain.RawRow{
		{Type: "Parts", Description: "Logic board", AmountText: "150.00"},
		{Type: "Labour", AmountText: "80"},
	}
}

func TestImportClients_RawBody(t *testing.T) {
	srv := newTestServer(t)

	clients := importClients(t, srv, "Jane Doe,jane@example.com\nBob Smith,bob@example.com\n")
	assert.Len(t, clients, 2)
	assert.NotZero(t, clients[0].ID)

	w := doRequest(srv, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []clientdomain.Client `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, "Jane Doe", body.Data[0].Name)
}

func TestImportClients_Multipart(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "clients.csv")
	assert.NoError(t, err)
	_, err = part.Write([]byte("Jane Doe,jane@example.com\n"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	w := doRequest(srv, http.MethodPost, "/api/clients/import", mw.FormDataContentType(), buf.Bytes())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestImportClients_EmptyUpload(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, http.MethodPost, "/api/clients/import", "text/csv", []byte("   \n"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "empty_upload", errorCode(t, w))
}

func TestExportClients(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, http.MethodGet, "/api/clients/export", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	importClients(t, srv, "Jane Doe,jane@example.com\n")

	w = doRequest(srv, http.MethodGet, "/api/clients/export", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "clients.csv")
	assert.Equal(t, "Jane Doe,jane@example.com\n", w.Body.String())
}

func TestComposeInvoice(t *testing.T) {
	srv := newTestServer(t)
	clients := importClients(t, srv, "Jane Doe,jane@example.com\n")

	w := doRequest(srv, http.MethodPost, "/api/invoices/compose", "application/json",
		composeBody(t, clients[0].ID.String(), standardRows()))
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data invoicedomain.ComposeResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	doc := body.Data.Document
	assert.Equal(t, "DJ260831", doc.Number)
	assert.Equal(t, "jane@example.com", doc.To)
	assert.InDelta(t, 253, doc.Totals.Total, 1e-9)
	assert.True(t, strings.HasPrefix(doc.MailtoURL, "mailto:jane%40example.com?subject="), doc.MailtoURL)
}

func TestComposeInvoice_NoValidRows(t *testing.T) {
	srv := newTestServer(t)
	clients := importClients(t, srv, "Jane Doe,jane@example.com\n")

	w := doRequest(srv, http.MethodPost, "/api/invoices/compose", "application/json",
		composeBody(t, clients[0].ID.String(), []invoicedomain.RawRow{
			{Type: "Parts", AmountText: ""},
		}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no_line_items", errorCode(t, w))
}

func TestComposeInvoice_UnknownClient(t *testing.T) {
	srv := newTestServer(t)
	importClients(t, srv, "Jane Doe,jane@example.com\n")

	w := doRequest(srv, http.MethodPost, "/api/invoices/compose", "application/json",
		composeBody(t, "424242424242", standardRows()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_client", errorCode(t, w))
}

func TestComposeInvoice_MalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, http.MethodPost, "/api/invoices/compose", "application/json",
		[]byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errorCode(t, w))
}

func TestExportInvoicePDF(t *testing.T) {
	srv := newTestServer(t)
	clients := importClients(t, srv, "Jane Doe,jane@example.com\n")

	w := doRequest(srv, http.MethodPost, "/api/invoices/pdf", "application/json",
		composeBody(t, clients[0].ID.String(), standardRows()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "jane-doe-dj260831.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")), "body is not a PDF")
}

func TestEmailInvoice_DisabledWithoutSMTP(t *testing.T) {
	srv := newTestServer(t)
	clients := importClients(t, srv, "Jane Doe,jane@example.com\n")

	w := doRequest(srv, http.MethodPost, "/api/invoices/email", "application/json",
		composeBody(t, clients[0].ID.String(), standardRows()))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestServeIndex(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>Invoicedesk</title>")
}
