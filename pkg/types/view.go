package types

import (
	"errors"
	"strings"
)

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// ErrInvalidDirection is returned by ParseDirection for unrecognized input.
var ErrInvalidDirection = errors.New("invalid sort direction")

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts asc/ascending and desc/descending, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, ErrInvalidDirection
	}
}

// ViewState determines which subset of the canonical collection is shown.
// Exactly one ViewState exists per active view.
type ViewState struct {
	SearchKey     string    `json:"search_key" yaml:"search_key"`
	SortField     string    `json:"sort_field" yaml:"sort_field"`
	SortDirection Direction `json:"sort_direction" yaml:"sort_direction"`
	CurrentPage   int       `json:"current_page" yaml:"current_page"`
	PageSize      int       `json:"page_size" yaml:"page_size"`
}

// MarshalText encodes the direction as "asc" or "desc".
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes "asc" or "desc".
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
