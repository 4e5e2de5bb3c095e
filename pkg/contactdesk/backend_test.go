package contactdesk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	b, err := Open(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	id, err := b.AddContact(ctx, map[string]any{types.FieldFirstName: "Ada"})
	require.NoError(t, err)

	records, err := b.FetchRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(context.Background(), types.Config{Backend: "oracle"}, nil)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)

	_, err = Open(context.Background(), types.Config{Backend: types.BackendPostgres}, nil)
	assert.ErrorIs(t, err, types.ErrDSNEmpty)
}
