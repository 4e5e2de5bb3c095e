package view

import (
	"fmt"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

var searchable = []string{types.FieldFirstName, types.FieldLastName, types.FieldEmail}

func contact(id, first, last, email string) types.Record {
	return types.NewRecord(id, map[string]any{
		types.FieldFirstName: first,
		types.FieldLastName:  last,
		types.FieldEmail:     email,
	})
}

// alphabet returns n records A0..A(n-1) with matching first names.
func alphabet(n int) []types.Record {
	out := make([]types.Record, n)
	for i := range n {
		name := fmt.Sprintf("A%d", i)
		out[i] = contact(name, name, "Last", name+"@example.com")
	}
	return out
}

func ids(records []types.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

type staticSource []types.Record

func (s staticSource) Records() []types.Record { return types.CloneRecords(s) }
