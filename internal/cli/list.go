package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contactdesk/internal/app"
	"github.com/mesh-intelligence/contactdesk/internal/notify"
	"github.com/mesh-intelligence/contactdesk/internal/view"
	"github.com/mesh-intelligence/contactdesk/pkg/contactdesk"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

type listFlags struct {
	search   string
	sort     string
	dir      string
	page     int
	pageSize int
}

func (c *cli) newListCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of contacts",
		Long: `List filters, sorts and pages the contact list.

The search key matches case-insensitively against the searchable fields.

Example:
  contactdesk list
  contactdesk list --search jo --sort LastName --dir desc
  contactdesk list --page 2 --page-size 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := c.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			s := c.newSession(cmd, backend)
			if _, err := s.Refresh(cmd.Context()); err != nil {
				return sysError(err)
			}
			page, err := applyListFlags(cmd, s, f, c.cfg)
			if err != nil {
				return userError(err)
			}
			return c.emit(cmd, page, func(w io.Writer) error {
				return printPage(w, page)
			})
		},
	}
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search key")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort field")
	cmd.Flags().StringVar(&f.dir, "dir", "asc", "sort direction (asc, desc)")
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "contacts per page (default from config)")
	return cmd
}

// applyListFlags drives the session the way a viewer would: search, then
// sort, then page size, then page.
func applyListFlags(cmd *cobra.Command, s *app.Session, f listFlags, cfg types.Config) (view.Page, error) {
	page := s.Page()
	if f.search != "" {
		page = s.Search(f.search)
	}
	if f.sort != "" || cmd.Flags().Changed("dir") {
		field := cfg.DefaultSort
		if f.sort != "" {
			var err error
			if field, err = resolveField(f.sort, cfg.SortableFields); err != nil {
				return page, err
			}
		}
		dir, err := types.ParseDirection(f.dir)
		if err != nil {
			return page, err
		}
		if page, err = s.SortBy(field, dir); err != nil {
			return page, err
		}
	}
	if cmd.Flags().Changed("page-size") {
		var err error
		if page, err = s.SetPageSize(f.pageSize); err != nil {
			return page, fmt.Errorf("--page-size %d: %w", f.pageSize, err)
		}
	}
	if f.page != page.Number {
		page = s.GoToPage(f.page)
	}
	return page, nil
}

// newSession builds a session whose notifications go to the log and to
// stderr.
func (c *cli) newSession(cmd *cobra.Command, backend contactdesk.Backend) *app.Session {
	n := notify.Multi{
		notify.NewLogger(c.logger.Named("notify")),
		notify.Writer{W: cmd.ErrOrStderr()},
	}
	return app.New(backend, c.cfg, n, app.WithLogger(c.logger), app.WithMetrics(c.metrics))
}
