package types

import (
	"context"
	"errors"
)

// Fetcher reads the canonical collection from the backend.
type Fetcher interface {
	// FetchRecords returns every record. The slice is owned by the caller.
	FetchRecords(ctx context.Context) ([]Record, error)
}

// Saver writes a batch of drafts to the backend.
type Saver interface {
	// SaveRecords applies all drafts or none of them.
	SaveRecords(ctx context.Context, drafts []DraftEdit) error
}

// ContactStore is a backend that can both fetch and save contacts.
type ContactStore interface {
	Fetcher
	Saver
}

// Backend and record errors.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid record ID")
	ErrInvalidField    = errors.New("invalid field")
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Controller errors.
var (
	ErrFetchFailed      = errors.New("fetch records failed")
	ErrSaveFailed       = errors.New("save records failed")
	ErrCommitInFlight   = errors.New("commit already in flight")
	ErrFieldNotEditable = errors.New("field is not editable")
	ErrFieldNotSortable = errors.New("field is not sortable")
)
