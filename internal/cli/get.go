package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/store"
)

func parseRecordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}

// NewGetCommand creates the get command: fetch one record by id.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one medicine record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "bad id", err)
			}

			a, err := opts.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			m, err := a.db.GetByID(cmd.Context(), id)
			if store.IsNotFound(err) {
				return WrapExitError(ExitFailure, "record not found", err)
			}
			if err != nil {
				return WrapExitError(ExitFailure, "get record", err)
			}

			f := opts.formatter(cmd)
			if f.JSON() {
				return f.Success(m)
			}

			fmt.Fprintf(f.Writer, "id:            %d\n", m.ID)
			fmt.Fprintf(f.Writer, "name:          %s\n", m.Name)
			fmt.Fprintf(f.Writer, "cost:          %.2f\n", m.Cost)
			fmt.Fprintf(f.Writer, "quantity:      %d\n", m.Quantity)
			fmt.Fprintf(f.Writer, "total:         %.2f\n", m.Total())
			fmt.Fprintf(f.Writer, "purchase date: %s\n", orDash(m.PurchaseDate))
			fmt.Fprintf(f.Writer, "expiry date:   %s (%s)\n", orDash(m.ExpiryDate), m.Expiry(time.Now()))
			fmt.Fprintf(f.Writer, "created:       %s\n", m.CreatedAt.Format(time.RFC3339))
			if !m.UpdatedAt.IsZero() {
				fmt.Fprintf(f.Writer, "updated:       %s\n", m.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
