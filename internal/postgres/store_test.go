package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// envTestDSN names a disposable database for the integration tests below.
const envTestDSN = "CONTACTDESK_TEST_POSTGRES_DSN"

func TestUpdateStatement(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stmt, args, err := updateStatement(types.DraftEdit{
		RecordID: "r1",
		Changes:  map[string]any{types.FieldPhone: "555", types.FieldEmail: "x@y.com"},
	}, at)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE contacts SET email = $1, phone = $2, updated_at = $3 WHERE contact_id = $4", stmt)
	assert.Equal(t, []any{"x@y.com", "555", at, "r1"}, args)
}

func TestUpdateStatementRejects(t *testing.T) {
	_, _, err := updateStatement(types.DraftEdit{Changes: map[string]any{types.FieldEmail: "x"}}, time.Now())
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, _, err = updateStatement(types.DraftEdit{RecordID: "r1", Changes: map[string]any{"Title": "Dr"}}, time.Now())
	assert.ErrorIs(t, err, types.ErrInvalidField)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv(envTestDSN)
	if dsn == "" {
		t.Skipf("%s not set", envTestDSN)
	}
	ctx := context.Background()
	s, err := Open(ctx, dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.EnsureSchema(ctx))
	_, err = s.pool.Exec(ctx, "TRUNCATE contacts, inquiries")
	require.NoError(t, err)
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.AddContact(ctx, map[string]any{types.FieldFirstName: "Ada", types.FieldEmail: "ada@x.org"})
	require.NoError(t, err)

	require.NoError(t, s.SaveRecords(ctx, []types.DraftEdit{
		{RecordID: id, Changes: map[string]any{types.FieldEmail: "x@y.com"}},
	}))

	records, err := s.FetchRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "x@y.com", records[0].Value(types.FieldEmail))
}

func TestStoreSaveIsAllOrNothing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.AddContact(ctx, map[string]any{types.FieldEmail: "ada@x.org"})
	require.NoError(t, err)

	err = s.SaveRecords(ctx, []types.DraftEdit{
		{RecordID: id, Changes: map[string]any{types.FieldEmail: "changed@y.com"}},
		{RecordID: "missing", Changes: map[string]any{types.FieldEmail: "a@b.c"}},
	})
	require.ErrorIs(t, err, types.ErrNotFound)

	records, err := s.FetchRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.org", records[0].Value(types.FieldEmail))
}

func TestStoreSeedOnlyWhenEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(types.SampleContacts()), n)

	n, err = s.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
