package types

import "maps"

// DraftEdit holds the uncommitted field changes for a single record.
type DraftEdit struct {
	RecordID string         `json:"record_id" yaml:"record_id"`
	Changes  map[string]any `json:"changes" yaml:"changes"`
}

// Clone returns a copy of the draft whose Changes map is not shared.
func (d DraftEdit) Clone() DraftEdit {
	c := DraftEdit{RecordID: d.RecordID, Changes: make(map[string]any, len(d.Changes))}
	maps.Copy(c.Changes, d.Changes)
	return c
}
