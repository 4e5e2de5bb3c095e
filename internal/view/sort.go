package view

import (
	"slices"
	"strings"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Sort returns a copy of records ordered by the lower-cased string form of
// field. Missing values sort as "". The sort is stable in both directions:
// records with equal keys keep their input order.
func Sort(records []types.Record, field string, dir types.Direction) []types.Record {
	out := slices.Clone(records)
	if out == nil {
		out = []types.Record{}
	}
	slices.SortStableFunc(out, func(a, b types.Record) int {
		c := strings.Compare(strings.ToLower(a.Value(field)), strings.ToLower(b.Value(field)))
		if dir == types.Descending {
			return -c
		}
		return c
	})
	return out
}
