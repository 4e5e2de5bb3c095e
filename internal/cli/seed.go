package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *cli) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample contacts into an empty contact list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := c.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			n, err := backend.Seed(cmd.Context())
			if err != nil {
				return sysError(fmt.Errorf("seed: %w", err))
			}
			return c.emit(cmd, map[string]int{"inserted": n}, func(w io.Writer) error {
				if n == 0 {
					_, err := fmt.Fprintln(w, "Contact list is not empty; nothing seeded.")
					return err
				}
				_, err := fmt.Fprintf(w, "Seeded %d contact(s)\n", n)
				return err
			})
		},
	}
}
