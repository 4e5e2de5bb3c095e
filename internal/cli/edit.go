package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

func (c *cli) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <field=value>...",
		Short: "Change fields of a contact and save them as one batch",
		Long: `Edit records each field=value pair as a draft for the contact and
commits the batch in a single save. If the save fails nothing is written.

The id may be the full contact ID or the short form shown by list.

Example:
  contactdesk edit 9f8e7d6c5b4a Email=ada@example.org Phone=5550100099`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := parseAssignments(args[1:], c.cfg.EditableFields)
			if err != nil {
				return userError(err)
			}

			backend, err := c.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			s := c.newSession(cmd, backend)
			if _, err := s.Refresh(cmd.Context()); err != nil {
				return sysError(err)
			}
			id, err := matchID(args[0], s.Records())
			if err != nil {
				return userError(err)
			}
			for field, value := range changes {
				if err := s.RecordEdit(id, field, value); err != nil {
					return userError(err)
				}
			}
			if _, err := s.Commit(cmd.Context()); err != nil {
				if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidField) {
					return userError(err)
				}
				return sysError(err)
			}

			for _, r := range s.Records() {
				if r.ID == id {
					return c.emit(cmd, r, func(w io.Writer) error {
						_, err := fmt.Fprintf(w, "Updated contact %s\n", id)
						return err
					})
				}
			}
			return nil
		},
	}
}

// matchID resolves ref to the one record whose ID equals it or ends with it.
func matchID(ref string, records []types.Record) (string, error) {
	var matches []string
	for _, r := range records {
		if r.ID == ref {
			return r.ID, nil
		}
		if strings.HasSuffix(r.ID, ref) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("contact %q: %w", ref, types.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("contact %q is ambiguous (%d matches)", ref, len(matches))
	}
}
