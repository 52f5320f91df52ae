package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/smallbiznis/invoicedesk/internal/client/domain"
	invoicedomain "github.com/smallbiznis/invoicedesk/internal/invoice/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInternal       = errors.New("internal_error")
)

// ErrorHandlingMiddleware maps deferred handler errors onto the JSON error
// envelope. Handlers abort with a domain error and never write partial
// output; either the full response is produced or only the notice is.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, invoicedomain.ErrNoLineItems):
		return http.StatusBadRequest, validationPayload("rows", "no_line_items",
			"enter at least one line with a positive amount")
	case errors.Is(err, invoicedomain.ErrInvalidClient):
		return http.StatusBadRequest, validationPayload("client_id", "invalid_client",
			"select a client first")
	case errors.Is(err, clientdomain.ErrEmptyUpload):
		return http.StatusBadRequest, validationPayload("csv", "empty_upload",
			"the uploaded file is empty")
	case errors.Is(err, clientdomain.ErrInvalidID):
		return http.StatusBadRequest, validationPayload("client_id", "invalid_id",
			"unknown client identifier")
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, validationPayload("request", "invalid_request",
			"invalid request")
	case errors.Is(err, clientdomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, clientdomain.ErrNoClients):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "no client list loaded",
		}
	case errors.Is(err, invoicedomain.ErrEmailDisabled):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "SMTP delivery is not configured",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func validationPayload(field, code, message string) errorPayload {
	return errorPayload{
		Type:    "validation_error",
		Message: "validation error",
		Errors: []ValidationError{
			{Field: field, Code: code, Message: message},
		},
	}
}
