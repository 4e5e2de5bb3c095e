package types

import (
	"fmt"
	"maps"
)

// Standard contact field names.
const (
	FieldFirstName = "FirstName"
	FieldLastName  = "LastName"
	FieldEmail     = "Email"
	FieldPhone     = "Phone"
)

// ContactFields lists the contact fields in display order.
var ContactFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
}

// Record is one row of the canonical collection. ID is unique and stable
// across fetches; Fields maps field names to scalar values.
type Record struct {
	ID     string         `json:"id" yaml:"id"`
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// NewRecord returns a Record with the given ID and a copy of fields.
func NewRecord(id string, fields map[string]any) Record {
	r := Record{ID: id, Fields: make(map[string]any, len(fields))}
	maps.Copy(r.Fields, fields)
	return r
}

// Value returns the string form of a field. Absent and nil values yield "".
func (r Record) Value(field string) string {
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone returns a copy of the record whose Fields map is not shared.
func (r Record) Clone() Record {
	return NewRecord(r.ID, r.Fields)
}

// CloneRecords copies a record slice, cloning every record.
// A nil input yields an empty, non-nil slice.
func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
