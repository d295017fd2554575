package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/inventory"
	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// NewListCommand creates the list command: the sorted/filtered projection
// over the full record set.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var (
		search    string
		sortKey   string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List medicine records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := inventory.ParseSortKey(sortKey)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad --sort", err)
			}
			dir, err := inventory.ParseDirection(direction)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad --direction", err)
			}

			a, err := opts.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.db.List(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "list records", err)
			}

			// Filter first, then sort.
			projected := inventory.Project(records, search, key, dir)

			f := opts.formatter(cmd)
			if f.JSON() {
				return f.Success(projected)
			}
			renderTable(f.Writer, projected, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name (case-insensitive substring)")
	cmd.Flags().StringVar(&sortKey, "sort", string(inventory.SortByName), "sort field")
	cmd.Flags().StringVar(&direction, "direction", string(inventory.Ascending), "sort direction (asc|desc)")
	return cmd
}

func renderTable(w io.Writer, records []record.Medicine, now time.Time) {
	if len(records) == 0 {
		fmt.Fprintln(w, "no records")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOST\tQTY\tTOTAL\tPURCHASED\tEXPIRES\tFLAGS")
	for _, m := range records {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%d\t%.2f\t%s\t%s\t%s\n",
			m.ID, m.Name, m.Cost, m.Quantity, m.Total(),
			orDash(m.PurchaseDate), orDash(m.ExpiryDate), flags(m, now))
	}
	tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// flags renders the per-row warning markers: expired is the hard flag,
// expiring-soon the soft one, plus the low-stock marker.
func flags(m record.Medicine, now time.Time) string {
	out := ""
	switch m.Expiry(now) {
	case record.Expired:
		out = "EXPIRED"
	case record.ExpiringSoon:
		out = "expires-soon"
	}
	if m.Quantity < inventory.LowStockThreshold {
		if out != "" {
			out += ","
		}
		out += "low-stock"
	}
	if out == "" {
		out = "-"
	}
	return out
}
