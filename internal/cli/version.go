package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contactdesk/pkg/contactdesk"
)

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the contactdesk version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.emit(cmd, map[string]string{"version": contactdesk.Version}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, "contactdesk", contactdesk.Version)
				return err
			})
		},
	}
}
