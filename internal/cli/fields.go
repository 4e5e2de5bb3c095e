package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// resolveField matches name case-insensitively against known. When nothing
// matches, the error names the closest known field if one is near enough.
func resolveField(name string, known []string) (string, error) {
	for _, k := range known {
		if strings.EqualFold(k, name) {
			return k, nil
		}
	}
	if s := closestField(name, known); s != "" {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", types.ErrInvalidField, name, s)
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", types.ErrInvalidField, name, strings.Join(known, ", "))
}

// closestField returns the known field within edit distance
// max(2, len(name)/3) of name, or "".
func closestField(name string, known []string) string {
	lower := strings.ToLower(name)
	best, bestDist := "", -1
	for _, k := range known {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(k))
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}

// parseAssignments splits field=value arguments, resolving each field
// against known. Later assignments to the same field win.
func parseAssignments(args []string, known []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q (expected field=value)", arg)
		}
		field, err := resolveField(strings.TrimSpace(name), known)
		if err != nil {
			return nil, err
		}
		out[field] = value
	}
	return out, nil
}
