package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

func (c *cli) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <field=value>...",
		Short: "Add a contact",
		Long: `Add inserts one contact. Fields are given as field=value pairs;
field names match case-insensitively.

Example:
  contactdesk add FirstName=Ada LastName=Lovelace Email=ada@analytical.org`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseAssignments(args, types.ContactFields)
			if err != nil {
				return userError(err)
			}

			backend, err := c.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			id, err := backend.AddContact(cmd.Context(), fields)
			if err != nil {
				if errors.Is(err, types.ErrInvalidField) {
					return userError(err)
				}
				return sysError(fmt.Errorf("add contact: %w", err))
			}
			return c.emit(cmd, map[string]string{"id": id}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, id)
				return err
			})
		},
	}
}
