// Package store holds the canonical record collection as last fetched from
// the backend. The collection is only ever replaced wholesale.
package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/internal/metrics"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Store is the RecordStore: it owns the canonical collection and refreshes
// it through a Fetcher.
type Store struct {
	mu      sync.RWMutex
	records []types.Record
	loaded  bool

	fetcher types.Fetcher
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New creates an empty store backed by fetcher. logger and m may be nil.
func New(fetcher types.Fetcher, logger *zap.Logger, m *metrics.Metrics) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		records: []types.Record{},
		fetcher: fetcher,
		logger:  logger,
		metrics: m,
	}
}

// Load fetches the canonical collection and replaces the store contents.
// On failure the previous contents are kept and the returned error wraps
// types.ErrFetchFailed.
func (s *Store) Load(ctx context.Context) ([]types.Record, error) {
	records, err := s.fetcher.FetchRecords(ctx)
	s.metrics.ObserveLoad(len(records), err)
	if err != nil {
		s.logger.Warn("Failed to load records", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", types.ErrFetchFailed, err)
	}

	s.Replace(records)
	s.logger.Debug("Loaded records", zap.Int("count", len(records)))
	return s.Records(), nil
}

// Replace swaps in a copy of records as the canonical collection.
func (s *Store) Replace(records []types.Record) {
	cp := types.CloneRecords(records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cp
	s.loaded = true
}

// Records returns a copy of the canonical collection.
func (s *Store) Records() []types.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.CloneRecords(s.records)
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (types.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return types.Record{}, false
}

// Len returns the size of the canonical collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Loaded reports whether any load or replace has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
