package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contactdesk/internal/inquiry"
)

func newGreetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "greet [name]",
		Short:       "Print a greeting",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			msg := inquiry.Greet(name)
			return c.emit(cmd, map[string]string{"greeting": msg}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, msg)
				return err
			})
		},
	}
}
