package types

import (
	"errors"
	"slices"
)

// Config holds backend selection and the view configuration surface.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	DSN     string `json:"dsn" yaml:"dsn"`

	PageSize         int       `json:"page_size" yaml:"page_size"`
	SearchableFields []string  `json:"searchable_fields" yaml:"searchable_fields"`
	SortableFields   []string  `json:"sortable_fields" yaml:"sortable_fields"`
	EditableFields   []string  `json:"editable_fields" yaml:"editable_fields"`
	DefaultSort      string    `json:"default_sort" yaml:"default_sort"`
	DefaultDirection Direction `json:"default_direction" yaml:"default_direction"`
}

// Supported backend names.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// DefaultPageSize is the number of records per page when none is configured.
const DefaultPageSize = 5

// Config validation errors.
var (
	ErrBackendEmpty       = errors.New("backend must not be empty")
	ErrBackendUnknown     = errors.New("unknown backend")
	ErrDSNEmpty           = errors.New("postgres backend requires a dsn")
	ErrPageSizeInvalid    = errors.New("page size must be positive")
	ErrNoSearchableFields = errors.New("at least one searchable field is required")
	ErrDefaultSortUnknown = errors.New("default sort field is not sortable")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite:   true,
	BackendPostgres: true,
}

// DefaultConfig returns the contact list configuration: five rows per page,
// first name, last name and email searchable, every contact field sortable
// and editable, sorted by first name ascending.
func DefaultConfig() Config {
	return Config{
		Backend:          BackendSQLite,
		PageSize:         DefaultPageSize,
		SearchableFields: []string{FieldFirstName, FieldLastName, FieldEmail},
		SortableFields:   slices.Clone(ContactFields),
		EditableFields:   slices.Clone(ContactFields),
		DefaultSort:      FieldFirstName,
		DefaultDirection: Ascending,
	}
}

// WithDefaults fills zero-valued view settings from DefaultConfig.
// Backend selection fields are left alone.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.PageSize == 0 {
		c.PageSize = d.PageSize
	}
	if len(c.SearchableFields) == 0 {
		c.SearchableFields = d.SearchableFields
	}
	if len(c.SortableFields) == 0 {
		c.SortableFields = d.SortableFields
	}
	if len(c.EditableFields) == 0 {
		c.EditableFields = d.EditableFields
	}
	if c.DefaultSort == "" {
		c.DefaultSort = d.DefaultSort
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendPostgres && c.DSN == "" {
		return ErrDSNEmpty
	}
	if c.PageSize <= 0 {
		return ErrPageSizeInvalid
	}
	if len(c.SearchableFields) == 0 {
		return ErrNoSearchableFields
	}
	if c.DefaultSort != "" && !slices.Contains(c.SortableFields, c.DefaultSort) {
		return ErrDefaultSortUnknown
	}
	return nil
}
