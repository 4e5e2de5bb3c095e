package sqlite

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Seed inserts the sample contacts when the contacts table is empty and
// returns how many were inserted.
func (b *Backend) Seed(ctx context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return 0, types.ErrDetached
	}

	var count int
	if err := b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	samples := types.SampleContacts()
	for _, fields := range samples {
		if err := insertContact(ctx, tx, newUUID(), fields, now); err != nil {
			return 0, err
		}
	}
	if err := b.persistContacts(ctx, tx); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}

	b.logger.Info("Seeded sample contacts", zap.Int("count", len(samples)))
	return len(samples), nil
}
