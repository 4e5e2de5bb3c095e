package view

import (
	"strings"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Filter returns the records for which any searchable field contains
// searchKey, case-insensitively. An empty key matches every record. Output
// keeps the relative order of canonical; canonical itself is not modified.
func Filter(canonical []types.Record, searchKey string, searchable []string) []types.Record {
	out := make([]types.Record, 0, len(canonical))
	if searchKey == "" {
		return append(out, canonical...)
	}
	key := strings.ToLower(searchKey)
	for _, r := range canonical {
		if matches(r, key, searchable) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r types.Record, lowerKey string, searchable []string) bool {
	for _, f := range searchable {
		if strings.Contains(strings.ToLower(r.Value(f)), lowerKey) {
			return true
		}
	}
	return false
}
