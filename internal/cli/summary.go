package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/inventory"
	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// Summary is the dashboard view: counts, total value and the grouped
// breakdown, all recomputed from the full record set.
type Summary struct {
	Records    int                      `json:"records"`
	TotalValue float64                  `json:"total_value"`
	LowStock   int                      `json:"low_stock"`
	Groups     []inventory.GroupSummary `json:"groups"`
}

func buildSummary(records []record.Medicine) Summary {
	return Summary{
		Records:    len(records),
		TotalValue: inventory.TotalValue(records),
		LowStock:   inventory.LowStockCount(records),
		Groups:     inventory.GroupByName(records),
	}
}

func renderSummaryText(w io.Writer, s Summary) {
	fmt.Fprintf(w, "records:     %d\n", s.Records)
	fmt.Fprintf(w, "total value: %.2f\n", s.TotalValue)
	fmt.Fprintf(w, "low stock:   %d (quantity < %d)\n", s.LowStock, inventory.LowStockThreshold)

	if len(s.Groups) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRECORDS\tQTY\tPRICE RANGE")
	for _, g := range s.Groups {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f - %.2f\n", g.Name, g.Records, g.Quantity, g.MinCost, g.MaxCost)
	}
	tw.Flush()
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show inventory totals and the grouped-by-name breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.db.List(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "list records", err)
			}

			s := buildSummary(records)
			f := opts.formatter(cmd)
			if f.JSON() {
				return f.Success(s)
			}
			renderSummaryText(f.Writer, s)
			return nil
		},
	}
}
