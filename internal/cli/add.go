package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// recordFlags holds the raw user-entered field values for add and update.
// Values stay text until the parse boundary; the store only ever receives
// typed values.
type recordFlags struct {
	name         string
	cost         string
	quantity     string
	purchaseDate string
	expiryDate   string
}

func (rf *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rf.name, "name", "", "medicine name")
	cmd.Flags().StringVar(&rf.cost, "cost", "", "unit price")
	cmd.Flags().StringVar(&rf.quantity, "quantity", "", "unit count")
	cmd.Flags().StringVar(&rf.purchaseDate, "purchase-date", "", "purchase date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rf.expiryDate, "expiry-date", "", "expiry date (YYYY-MM-DD)")
}

// NewAddCommand creates the add command: insert one new record.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	rf := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a medicine record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rf.name == "" {
				return NewExitError(ExitCommandError, "--name is required")
			}

			cost, err := record.ParseCost(rf.cost)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad --cost", err)
			}
			quantity, err := record.ParseQuantity(rf.quantity)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad --quantity", err)
			}
			purchaseDate, err := record.ParseDate(rf.purchaseDate)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad --purchase-date", err)
			}
			expiryDate, err := record.ParseDate(rf.expiryDate)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad --expiry-date", err)
			}

			a, err := opts.openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			a.warnIfNoSession()

			added, err := a.db.Add(cmd.Context(), record.Medicine{
				Name:         rf.name,
				Cost:         cost,
				Quantity:     quantity,
				PurchaseDate: purchaseDate,
				ExpiryDate:   expiryDate,
			})
			if err != nil {
				return WrapExitError(ExitFailure, "add record", err)
			}

			f := opts.formatter(cmd)
			if f.JSON() {
				return f.Success(added)
			}
			fmt.Fprintf(f.Writer, "added %q (id %d, total %.2f)\n", added.Name, added.ID, added.TotalPayment)
			return nil
		},
	}

	rf.register(cmd)
	return cmd
}
