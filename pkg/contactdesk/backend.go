package contactdesk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/internal/postgres"
	"github.com/mesh-intelligence/contactdesk/internal/sqlite"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Backend is an opened contact backend.
type Backend interface {
	types.ContactStore
	types.InquirySubmitter
	AddContact(ctx context.Context, fields map[string]any) (string, error)
	Seed(ctx context.Context) (int, error)
	Close() error
}

// Open validates cfg and opens the backend it names. The caller must Close
// the returned backend.
//
// Example:
//
//	backend, err := contactdesk.Open(ctx, types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".contactdesk-db",
//	}, logger)
//	defer backend.Close()
func Open(ctx context.Context, cfg types.Config, logger *zap.Logger) (Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendPostgres:
		s, err := postgres.Open(ctx, cfg.DSN, logger.Named("postgres"))
		if err != nil {
			return nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		return pgBackend{s}, nil
	default:
		b := sqlite.NewBackend(logger.Named("sqlite"))
		if err := b.Attach(cfg); err != nil {
			return nil, err
		}
		return sqliteBackend{b}, nil
	}
}

type sqliteBackend struct{ *sqlite.Backend }

func (b sqliteBackend) Close() error { return b.Detach() }

type pgBackend struct{ *postgres.Store }

func (b pgBackend) Close() error {
	b.Store.Close()
	return nil
}
