// Package edit accumulates per-record draft changes and commits them to the
// backend as one batch, refreshing the record store after a successful save.
package edit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/internal/metrics"
	"github.com/mesh-intelligence/contactdesk/internal/notify"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// State is the lifecycle state of the draft batch.
type State int

// Manager states.
const (
	Idle State = iota
	Editing
	Committing
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Committing:
		return "committing"
	default:
		return "idle"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Notification text shown to the viewer.
const (
	TitleSuccess   = "Success"
	TitleError     = "Error"
	MessageSaved   = "Contacts updated successfully!"
	MessageFailed  = "Error updating contacts. Please try again."
	MessageRefresh = "Contacts were saved but could not be reloaded."
)

// SaveFunc writes a batch of drafts; it must apply all of them or none.
type SaveFunc func(ctx context.Context, drafts []types.DraftEdit) error

// Reloader refreshes the canonical collection. *store.Store implements it.
type Reloader interface {
	Load(ctx context.Context) ([]types.Record, error)
}

// setter records one field change into a batch.
type setter func(b *Batch, recordID string, value any)

// Manager is the EditBatchManager.
type Manager struct {
	mu        sync.Mutex
	batch     *Batch
	inFlight  bool
	discarded bool

	setters  map[string]setter
	store    Reloader
	notifier types.Notifier
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) { m.metrics = mt }
}

// NewManager creates an idle manager that accepts edits to editable fields,
// refreshes store after each successful commit, and reports outcomes to
// notifier. A nil notifier discards notifications.
func NewManager(editable []string, store Reloader, notifier types.Notifier, opts ...Option) *Manager {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	m := &Manager{
		batch:    newBatch(),
		setters:  make(map[string]setter, len(editable)),
		store:    store,
		notifier: notifier,
		logger:   zap.NewNop(),
	}
	for _, f := range editable {
		m.setters[f] = fieldSetter(f)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func fieldSetter(field string) setter {
	return func(b *Batch, recordID string, value any) {
		b.set(recordID, field, value)
	}
}

// RecordEdit merges a field change into the draft for recordID, creating the
// draft if needed. Fields outside the editable set are rejected with
// types.ErrFieldNotEditable. Values are not validated. An edit that lands
// while a commit is in flight joins the next batch, not the one being saved.
func (m *Manager) RecordEdit(recordID, field string, value any) error {
	if recordID == "" {
		return types.ErrInvalidID
	}
	set, ok := m.setters[field]
	if !ok {
		return fmt.Errorf("edit %q: %w", field, types.ErrFieldNotEditable)
	}

	m.mu.Lock()
	set(m.batch, recordID, value)
	pending := m.batch.Len()
	m.mu.Unlock()

	m.metrics.ObserveEdit()
	m.metrics.SetPending(pending)
	m.logger.Debug("Recorded field edit",
		zap.String("record_id", recordID),
		zap.String("field", field))
	return nil
}

// Commit sends the whole batch to save in a single call.
//
// On success the batch is cleared, the store is reloaded, and a success
// notification is sent. On failure the batch is restored unchanged (edits
// recorded during the call are layered on top), an error notification is
// sent, and the returned error wraps types.ErrSaveFailed. Nothing is retried.
// Commit with no drafts does nothing; a second Commit while one is in flight
// returns types.ErrCommitInFlight.
func (m *Manager) Commit(ctx context.Context, save SaveFunc) error {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return types.ErrCommitInFlight
	}
	if m.batch.Len() == 0 {
		m.mu.Unlock()
		return nil
	}
	snapshot := m.batch
	m.batch = newBatch()
	m.inFlight = true
	m.discarded = false
	drafts := snapshot.Drafts()
	m.mu.Unlock()

	m.logger.Info("Committing drafts", zap.Int("records", len(drafts)))

	start := time.Now()
	err := save(ctx, drafts)
	m.metrics.ObserveCommit(time.Since(start).Seconds(), err)

	if err != nil {
		m.mu.Lock()
		if !m.discarded {
			snapshot.absorb(m.batch)
			m.batch = snapshot
		}
		m.inFlight = false
		pending := m.batch.Len()
		m.mu.Unlock()

		m.metrics.SetPending(pending)
		m.logger.Error("Failed to save drafts", zap.Int("records", len(drafts)), zap.Error(err))
		m.notifier.Notify(TitleError, MessageFailed, types.SeverityError)
		return fmt.Errorf("%w: %w", types.ErrSaveFailed, err)
	}

	m.notifier.Notify(TitleSuccess, MessageSaved, types.SeveritySuccess)
	if m.store != nil {
		if _, lerr := m.store.Load(ctx); lerr != nil {
			m.logger.Warn("Failed to reload records after commit", zap.Error(lerr))
			m.notifier.Notify(TitleError, MessageRefresh, types.SeverityError)
		}
	}

	m.mu.Lock()
	m.inFlight = false
	pending := m.batch.Len()
	m.mu.Unlock()

	m.metrics.SetPending(pending)
	m.logger.Info("Committed drafts", zap.Int("records", len(drafts)))
	return nil
}

// Discard drops every pending draft. A commit already in flight still
// completes, but if it fails its drafts are not restored.
func (m *Manager) Discard() {
	m.mu.Lock()
	m.batch = newBatch()
	if m.inFlight {
		m.discarded = true
	}
	m.mu.Unlock()

	m.metrics.SetPending(0)
	m.logger.Debug("Discarded drafts")
}

// State reports Committing while a save is in flight, otherwise Editing when
// drafts are pending and Idle when none are.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.inFlight:
		return Committing
	case m.batch.Len() > 0:
		return Editing
	default:
		return Idle
	}
}

// Drafts returns a deep copy of the pending drafts in first-edit order.
func (m *Manager) Drafts() []types.DraftEdit {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batch.Drafts()
}

// Pending returns the number of records with drafts.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batch.Len()
}

// Editable reports whether field accepts edits.
func (m *Manager) Editable(field string) bool {
	_, ok := m.setters[field]
	return ok
}
