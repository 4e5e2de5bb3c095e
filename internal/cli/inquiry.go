package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contactdesk/internal/inquiry"
	"github.com/mesh-intelligence/contactdesk/internal/notify"
)

func (c *cli) newInquiryCmd() *cobra.Command {
	values := make(map[string]*string, len(inquiry.Fields()))
	cmd := &cobra.Command{
		Use:   "inquiry",
		Short: "Submit a customer inquiry",
		Long: `Inquiry validates and stores a customer inquiry.

Name, email and description are required; phone, when given, must be 10 to
15 digits.

Example:
  contactdesk inquiry --name "Ada Lovelace" --email ada@analytical.org \
    --description "The engine jams on Bernoulli numbers"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := inquiry.NewForm()
			for _, field := range inquiry.Fields() {
				// Per-field errors are reported together by Submit.
				_ = form.Set(field, *values[field])
			}

			backend, err := c.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			n := notify.Multi{
				notify.NewLogger(c.logger.Named("inquiry")),
				notify.Writer{W: cmd.ErrOrStderr()},
			}
			id, err := form.Submit(cmd.Context(), backend, n)
			if err != nil {
				if errors.Is(err, inquiry.ErrInvalid) {
					return userError(err)
				}
				return sysError(err)
			}
			return c.emit(cmd, map[string]string{"inquiry_id": id}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, id)
				return err
			})
		},
	}
	for _, field := range inquiry.Fields() {
		values[field] = cmd.Flags().String(field, "", field)
	}
	return cmd
}
