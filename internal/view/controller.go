package view

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Source supplies the canonical collection. internal/store.Store implements it.
type Source interface {
	Records() []types.Record
}

// Controller owns the ViewState of one active view. Every method that can
// change the search key, sort, page, or page size ends by recomputing the
// current page; callers invoke Recompute after the canonical collection
// changes.
type Controller struct {
	source     Source
	searchable []string
	sortable   []string
	state      types.ViewState
	current    Page
}

// NewController creates a controller over source using the view settings of
// cfg. The initial page is computed immediately.
func NewController(source Source, cfg types.Config) *Controller {
	cfg = cfg.WithDefaults()
	c := &Controller{
		source:     source,
		searchable: slices.Clone(cfg.SearchableFields),
		sortable:   slices.Clone(cfg.SortableFields),
		state: types.ViewState{
			SortField:     cfg.DefaultSort,
			SortDirection: cfg.DefaultDirection,
			CurrentPage:   1,
			PageSize:      cfg.PageSize,
		},
	}
	c.Recompute()
	return c
}

// Recompute derives the current page from the canonical collection and the
// view state, clamping the current page into range.
func (c *Controller) Recompute() Page {
	c.current = Compute(c.source.Records(), c.state, c.searchable)
	c.state.CurrentPage = c.current.Number
	return c.current
}

// Current returns the page computed by the last Recompute.
func (c *Controller) Current() Page {
	return c.current
}

// State returns a copy of the view state.
func (c *Controller) State() types.ViewState {
	return c.state
}

// Search sets the search key. The current page is kept and clamped if the
// filtered set shrank below it.
func (c *Controller) Search(key string) Page {
	c.state.SearchKey = key
	return c.Recompute()
}

// SortBy orders the filtered set by field. Fields outside the sortable set
// are rejected with ErrFieldNotSortable and leave the state unchanged.
func (c *Controller) SortBy(field string, dir types.Direction) (Page, error) {
	if !slices.Contains(c.sortable, field) {
		return c.current, fmt.Errorf("sort by %q: %w", field, types.ErrFieldNotSortable)
	}
	c.state.SortField = field
	c.state.SortDirection = dir
	return c.Recompute(), nil
}

// NextPage advances one page; a no-op on the last page.
func (c *Controller) NextPage() Page {
	c.state.CurrentPage = NextPage(c.state.CurrentPage, c.current.TotalPages)
	return c.Recompute()
}

// PreviousPage goes back one page; a no-op on the first page.
func (c *Controller) PreviousPage() Page {
	c.state.CurrentPage = PreviousPage(c.state.CurrentPage)
	return c.Recompute()
}

// GoToPage jumps to page n, clamped into [1, TotalPages].
func (c *Controller) GoToPage(n int) Page {
	c.state.CurrentPage = n
	return c.Recompute()
}

// SetPageSize changes the page size and clamps the current page.
func (c *Controller) SetPageSize(n int) (Page, error) {
	if n <= 0 {
		return c.current, types.ErrPageSizeInvalid
	}
	c.state.PageSize = n
	return c.Recompute(), nil
}

// Sortable reports the configured sortable fields.
func (c *Controller) Sortable() []string {
	return slices.Clone(c.sortable)
}
