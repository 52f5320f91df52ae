package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/smallbiznis/invoicedesk/internal/client/domain"
)

// maxCSVUploadBytes caps a client list upload. Real lists are a few KB.
const maxCSVUploadBytes = 5 << 20

// ImportClients replaces the session client list with the uploaded CSV.
// Accepts either a multipart "file" field or the raw blob as the body.
func (s *Server) ImportClients(c *gin.Context) {
	blob, err := readCSVUpload(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.clientSvc.Load(c.Request.Context(), clientdomain.LoadRequest{CSV: blob})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.obsMetrics.RecordCSVImport(c.Request.Context(), len(resp.Clients))

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListClients(c *gin.Context) {
	clients := s.clientSvc.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": clients})
}

// ExportClients serves the current list back as a CSV download.
func (s *Server) ExportClients(c *gin.Context) {
	csv, err := s.clientSvc.ExportCSV(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="clients.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func readCSVUpload(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()

		blob, err := io.ReadAll(io.LimitReader(f, maxCSVUploadBytes))
		if err != nil {
			return "", err
		}
		return string(blob), nil
	}

	blob, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCSVUploadBytes))
	if err != nil {
		return "", err
	}
	return string(blob), nil
}
