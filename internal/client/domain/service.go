package domain

import (
	"context"
	"errors"
)

// LoadRequest carries the raw CSV blob uploaded by the operator.
type LoadRequest struct {
	CSV string
}

// LoadResponse reports the replacing snapshot.
type LoadResponse struct {
	Clients []Client `json:"clients"`
	Skipped int      `json:"skipped"`
}

type Service interface {
	// Load parses the blob and atomically replaces the current snapshot.
	Load(context.Context, LoadRequest) (LoadResponse, error)

	// List returns the current snapshot in source order.
	List(context.Context) []Client

	// GetByID resolves one client from the current snapshot.
	GetByID(ctx context.Context, id string) (Client, error)

	// ExportCSV serializes the current snapshot back to name,email lines.
	ExportCSV(context.Context) (string, error)
}

var (
	ErrEmptyUpload = errors.New("empty_upload")
	ErrNoClients   = errors.New("no_clients")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
