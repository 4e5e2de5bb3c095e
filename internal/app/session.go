// Package app wires the record store, view controller, and edit manager into
// a Session serving one viewer of the contact list.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/internal/edit"
	"github.com/mesh-intelligence/contactdesk/internal/metrics"
	"github.com/mesh-intelligence/contactdesk/internal/notify"
	"github.com/mesh-intelligence/contactdesk/internal/store"
	"github.com/mesh-intelligence/contactdesk/internal/view"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Notification text for a failed refresh.
const (
	TitleLoadFailed   = "Error"
	MessageLoadFailed = "Error loading contacts. Please try again."
)

// Session is one viewer's contact list: the canonical collection, the
// current view of it, and the pending drafts.
type Session struct {
	backend  types.ContactStore
	store    *store.Store
	view     *view.Controller
	edits    *edit.Manager
	notifier types.Notifier
	logger   *zap.Logger
}

type options struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the logger passed to every component.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the metrics sink passed to every component.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a session over backend. Nothing is fetched until Refresh.
func New(backend types.ContactStore, cfg types.Config, notifier types.Notifier, opts ...Option) *Session {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	cfg = cfg.WithDefaults()

	st := store.New(backend, o.logger.Named("store"), o.metrics)
	return &Session{
		backend:  backend,
		store:    st,
		view:     view.NewController(st, cfg),
		edits:    edit.NewManager(cfg.EditableFields, st, notifier, edit.WithLogger(o.logger.Named("edit")), edit.WithMetrics(o.metrics)),
		notifier: notifier,
		logger:   o.logger,
	}
}

// Refresh reloads the canonical collection and recomputes the view. On
// failure the previous collection is kept, the viewer is notified, and the
// error is returned alongside the unchanged page.
func (s *Session) Refresh(ctx context.Context) (view.Page, error) {
	if _, err := s.store.Load(ctx); err != nil {
		s.logger.Error("Failed to refresh contacts", zap.Error(err))
		s.notifier.Notify(TitleLoadFailed, MessageLoadFailed, types.SeverityError)
		return s.view.Current(), err
	}
	return s.view.Recompute(), nil
}

// Page returns the current page.
func (s *Session) Page() view.Page { return s.view.Current() }

// ViewState returns the current view state.
func (s *Session) ViewState() types.ViewState { return s.view.State() }

// Search filters the view by key.
func (s *Session) Search(key string) view.Page { return s.view.Search(key) }

// SortBy orders the view by field.
func (s *Session) SortBy(field string, dir types.Direction) (view.Page, error) {
	return s.view.SortBy(field, dir)
}

// NextPage advances one page.
func (s *Session) NextPage() view.Page { return s.view.NextPage() }

// PreviousPage goes back one page.
func (s *Session) PreviousPage() view.Page { return s.view.PreviousPage() }

// GoToPage jumps to page n.
func (s *Session) GoToPage(n int) view.Page { return s.view.GoToPage(n) }

// SetPageSize changes the page size.
func (s *Session) SetPageSize(n int) (view.Page, error) { return s.view.SetPageSize(n) }

// RecordEdit adds a field change to the pending drafts.
func (s *Session) RecordEdit(recordID, field string, value any) error {
	return s.edits.RecordEdit(recordID, field, value)
}

// Commit saves the pending drafts through the backend and recomputes the
// view from whatever the store holds afterwards.
func (s *Session) Commit(ctx context.Context) (view.Page, error) {
	err := s.edits.Commit(ctx, s.backend.SaveRecords)
	return s.view.Recompute(), err
}

// Discard drops the pending drafts.
func (s *Session) Discard() { s.edits.Discard() }

// EditState reports the draft lifecycle state.
func (s *Session) EditState() edit.State { return s.edits.State() }

// Drafts returns the pending drafts.
func (s *Session) Drafts() []types.DraftEdit { return s.edits.Drafts() }

// Records returns the canonical collection.
func (s *Session) Records() []types.Record { return s.store.Records() }
