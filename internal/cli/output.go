package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contactdesk/internal/view"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// emit writes v as JSON or YAML when requested, otherwise calls text.
func (c *cli) emit(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch {
	case c.flags.jsonMode:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case c.flags.yamlMode:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// printPage prints one page of contacts as a table followed by a summary line.
func printPage(w io.Writer, page view.Page) error {
	if page.TotalRecords == 0 {
		_, err := fmt.Fprintln(w, "No contacts found.")
		return err
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tPHONE")
	fmt.Fprintln(tw, "--\t----------\t---------\t-----\t-----")
	for _, r := range page.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID),
			r.Value(types.FieldFirstName),
			r.Value(types.FieldLastName),
			r.Value(types.FieldEmail),
			r.Value(types.FieldPhone),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	_, err := fmt.Fprintf(w, "Page %d of %d (%d contact(s))\n", page.Number, page.TotalPages, page.TotalRecords)
	return err
}

// shortID keeps the random tail of a UUIDv7. edit accepts it as an ID.
func shortID(id string) string {
	if len(id) > 12 {
		return id[len(id)-12:]
	}
	return id
}

// writeMetrics dumps every gathered family in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return sysError(fmt.Errorf("gather metrics: %w", err))
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return sysError(fmt.Errorf("write metrics: %w", err))
		}
	}
	return nil
}
