package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *cli) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := c.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			out := map[string]string{
				"config":  c.configDir,
				"data":    c.cfg.DataDir,
				"backend": c.cfg.Backend,
			}
			return c.emit(cmd, out, func(w io.Writer) error {
				fmt.Fprintln(w, "contactdesk initialized successfully")
				fmt.Fprintln(w, "  config: ", c.configDir)
				fmt.Fprintln(w, "  data:   ", c.cfg.DataDir)
				_, err := fmt.Fprintln(w, "  backend:", c.cfg.Backend)
				return err
			})
		},
	}
}
