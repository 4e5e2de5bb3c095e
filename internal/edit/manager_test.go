package edit

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/internal/metrics"
	"github.com/mesh-intelligence/contactdesk/internal/notify"
	"github.com/mesh-intelligence/contactdesk/internal/store"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// MockFetcher is a mock implementation of types.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchRecords(ctx context.Context) ([]types.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]types.Record), args.Error(1)
}

// MockNotifier is a mock implementation of types.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(title, message string, severity types.Severity) {
	m.Called(title, message, severity)
}

var editable = []string{types.FieldFirstName, types.FieldLastName, types.FieldEmail, types.FieldPhone}

func failingSave(err error) SaveFunc {
	return func(context.Context, []types.DraftEdit) error { return err }
}

func recordingSave(got *[][]types.DraftEdit) SaveFunc {
	return func(_ context.Context, drafts []types.DraftEdit) error {
		*got = append(*got, drafts)
		return nil
	}
}

func TestRecordEditMergesPerRecord(t *testing.T) {
	m := NewManager(editable, nil, nil)
	assert.Equal(t, Idle, m.State())

	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))
	assert.Equal(t, Editing, m.State())
	require.NoError(t, m.RecordEdit("R1", types.FieldPhone, "555"))

	drafts := m.Drafts()
	require.Len(t, drafts, 1)
	assert.Equal(t, "R1", drafts[0].RecordID)
	assert.Equal(t, map[string]any{types.FieldEmail: "x@y.com", types.FieldPhone: "555"}, drafts[0].Changes)
}

func TestRecordEditLastWriteWins(t *testing.T) {
	m := NewManager(editable, nil, nil)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "first@y.com"))
	require.NoError(t, m.RecordEdit("R2", types.FieldFirstName, "Bo"))
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "second@y.com"))

	drafts := m.Drafts()
	require.Len(t, drafts, 2)
	assert.Equal(t, "R1", drafts[0].RecordID, "first-edit order is kept")
	assert.Equal(t, "second@y.com", drafts[0].Changes[types.FieldEmail])
	assert.Equal(t, 2, m.Pending())
}

func TestRecordEditRejectsUnknownFields(t *testing.T) {
	m := NewManager([]string{types.FieldEmail}, nil, nil)

	err := m.RecordEdit("R1", types.FieldPhone, "555")
	assert.ErrorIs(t, err, types.ErrFieldNotEditable)
	err = m.RecordEdit("R1", "constructor", "x")
	assert.ErrorIs(t, err, types.ErrFieldNotEditable)
	err = m.RecordEdit("", types.FieldEmail, "x@y.com")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	assert.Equal(t, Idle, m.State())
	assert.True(t, m.Editable(types.FieldEmail))
	assert.False(t, m.Editable(types.FieldPhone))
}

func TestDraftsAreCopies(t *testing.T) {
	m := NewManager(editable, nil, nil)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))

	d := m.Drafts()
	d[0].Changes[types.FieldEmail] = "mutated"
	assert.Equal(t, "x@y.com", m.Drafts()[0].Changes[types.FieldEmail])
}

func TestCommitFailureKeepsBatch(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("Notify", TitleError, MessageFailed, types.SeverityError).Once()

	mt := metrics.New(nil)
	m := NewManager(editable, nil, notifier, WithLogger(zap.NewNop()), WithMetrics(mt))
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))
	require.NoError(t, m.RecordEdit("R2", types.FieldLastName, "Doe"))
	before := m.Drafts()

	rejected := errors.New("validation rule failed")
	err := m.Commit(context.Background(), failingSave(rejected))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrSaveFailed)
	assert.ErrorIs(t, err, rejected)

	assert.Equal(t, before, m.Drafts())
	assert.Equal(t, Editing, m.State())
	assert.Equal(t, 1.0, testutil.ToFloat64(mt.CommitsTotal.WithLabelValues(metrics.ResultFailure)))
	assert.Equal(t, 2.0, testutil.ToFloat64(mt.PendingDrafts))
	notifier.AssertExpectations(t)
}

func TestCommitSuccessClearsBatchAndReloads(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockFetcher)
	fresh := []types.Record{types.NewRecord("R1", map[string]any{types.FieldEmail: "x@y.com"})}
	fetcher.On("FetchRecords", ctx).Return(fresh, nil).Once()

	s := store.New(fetcher, nil, nil)
	s.Replace([]types.Record{types.NewRecord("R1", map[string]any{types.FieldEmail: "old@y.com"})})

	rec := &notify.Recorder{}
	m := NewManager(editable, s, rec)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))

	var saved [][]types.DraftEdit
	require.NoError(t, m.Commit(ctx, recordingSave(&saved)))

	require.Len(t, saved, 1, "save is called exactly once")
	assert.Equal(t, []types.DraftEdit{{RecordID: "R1", Changes: map[string]any{types.FieldEmail: "x@y.com"}}}, saved[0])

	assert.Empty(t, m.Drafts())
	assert.Equal(t, Idle, m.State())
	assert.Equal(t, fresh, s.Records())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, types.Notification{Title: TitleSuccess, Message: MessageSaved, Severity: types.SeveritySuccess}, last)
	fetcher.AssertExpectations(t)
}

func TestCommitSuccessWithFailedReload(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchRecords", mock.Anything).Return([]types.Record(nil), errors.New("timeout"))

	s := store.New(fetcher, nil, nil)
	previous := []types.Record{types.NewRecord("R1", nil)}
	s.Replace(previous)

	rec := &notify.Recorder{}
	m := NewManager(editable, s, rec)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))

	require.NoError(t, m.Commit(context.Background(), recordingSave(new([][]types.DraftEdit))))
	assert.Empty(t, m.Drafts())
	assert.Equal(t, Idle, m.State())
	assert.Equal(t, previous, s.Records())

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, types.SeveritySuccess, events[0].Severity)
	assert.Equal(t, types.SeverityError, events[1].Severity)
	assert.Equal(t, MessageRefresh, events[1].Message)
}

func TestCommitEmptyBatchIsNoop(t *testing.T) {
	notifier := new(MockNotifier)
	m := NewManager(editable, nil, notifier)

	called := false
	err := m.Commit(context.Background(), func(context.Context, []types.DraftEdit) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditDuringCommitJoinsNextBatch(t *testing.T) {
	m := NewManager(editable, nil, nil)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))

	var saved []types.DraftEdit
	err := m.Commit(context.Background(), func(_ context.Context, drafts []types.DraftEdit) error {
		assert.Equal(t, Committing, m.State())
		require.NoError(t, m.RecordEdit("R2", types.FieldPhone, "555"))
		saved = drafts
		return nil
	})
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Equal(t, "R1", saved[0].RecordID)

	pending := m.Drafts()
	require.Len(t, pending, 1)
	assert.Equal(t, "R2", pending[0].RecordID)
	assert.Equal(t, Editing, m.State())
}

func TestEditDuringFailedCommitIsLayeredOnSnapshot(t *testing.T) {
	m := NewManager(editable, nil, nil)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "old@y.com"))
	require.NoError(t, m.RecordEdit("R1", types.FieldPhone, "111"))

	err := m.Commit(context.Background(), func(context.Context, []types.DraftEdit) error {
		require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "new@y.com"))
		require.NoError(t, m.RecordEdit("R3", types.FieldFirstName, "Cy"))
		return errors.New("rejected")
	})
	require.ErrorIs(t, err, types.ErrSaveFailed)

	drafts := m.Drafts()
	require.Len(t, drafts, 2)
	assert.Equal(t, "R1", drafts[0].RecordID)
	assert.Equal(t, "new@y.com", drafts[0].Changes[types.FieldEmail])
	assert.Equal(t, "111", drafts[0].Changes[types.FieldPhone])
	assert.Equal(t, "R3", drafts[1].RecordID)
}

func TestCommitWhileInFlight(t *testing.T) {
	m := NewManager(editable, nil, nil)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))

	var inner error
	require.NoError(t, m.Commit(context.Background(), func(ctx context.Context, _ []types.DraftEdit) error {
		inner = m.Commit(ctx, failingSave(nil))
		return nil
	}))
	assert.ErrorIs(t, inner, types.ErrCommitInFlight)
}

func TestDiscard(t *testing.T) {
	m := NewManager(editable, nil, nil)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))
	m.Discard()
	assert.Empty(t, m.Drafts())
	assert.Equal(t, Idle, m.State())

	m.Discard()
	assert.Equal(t, Idle, m.State())
}

func TestDiscardDuringFailedCommitDropsSnapshot(t *testing.T) {
	m := NewManager(editable, nil, nil)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))

	err := m.Commit(context.Background(), func(context.Context, []types.DraftEdit) error {
		m.Discard()
		return errors.New("rejected")
	})
	require.ErrorIs(t, err, types.ErrSaveFailed)
	assert.Empty(t, m.Drafts())
	assert.Equal(t, Idle, m.State())
}

func TestRetryAfterFailure(t *testing.T) {
	rec := &notify.Recorder{}
	m := NewManager(editable, nil, rec)
	require.NoError(t, m.RecordEdit("R1", types.FieldEmail, "x@y.com"))

	require.Error(t, m.Commit(context.Background(), failingSave(errors.New("rejected"))))

	var saved [][]types.DraftEdit
	require.NoError(t, m.Commit(context.Background(), recordingSave(&saved)))
	require.Len(t, saved, 1)
	assert.Equal(t, "x@y.com", saved[0][0].Changes[types.FieldEmail])

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, types.SeverityError, events[0].Severity)
	assert.Equal(t, types.SeveritySuccess, events[1].Severity)
}
