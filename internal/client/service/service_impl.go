package service

import (
	"context"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicedesk/internal/client/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
}

// Service holds the session client list. Consumers always receive copies of
// an immutable snapshot; Load swaps the whole snapshot under the lock.
type Service struct {
	log   *zap.Logger
	genID *snowflake.Node

	mu      sync.RWMutex
	clients []domain.Client
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
	}
}

func (s *Service) Load(ctx context.Context, req domain.LoadRequest) (domain.LoadResponse, error) {
	if strings.TrimSpace(req.CSV) == "" {
		return domain.LoadResponse{}, domain.ErrEmptyUpload
	}

	clients := domain.ParseCSV(req.CSV)
	for i := range clients {
		clients[i].ID = s.genID.Generate()
	}

	lineCount := strings.Count(strings.TrimRight(req.CSV, "\n"), "\n") + 1
	skipped := lineCount - len(clients)
	if skipped < 0 {
		skipped = 0
	}

	s.mu.Lock()
	s.clients = clients
	s.mu.Unlock()

	s.log.Info("client list replaced",
		zap.Int("clients", len(clients)),
		zap.Int("skipped", skipped),
	)

	return domain.LoadResponse{Clients: s.snapshot(), Skipped: skipped}, nil
}

func (s *Service) List(ctx context.Context) []domain.Client {
	return s.snapshot()
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Client, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Client{}, domain.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if c.ID == parsed {
			return c, nil
		}
	}
	return domain.Client{}, domain.ErrNotFound
}

func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	snapshot := s.snapshot()
	if len(snapshot) == 0 {
		return "", domain.ErrNoClients
	}
	return domain.ExportCSV(snapshot), nil
}

func (s *Service) snapshot() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}
