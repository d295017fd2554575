package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/inventory"
	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// NewRepriceCommand creates the reprice command: set a new unit cost on
// every record sharing a name, each via its own independent update.
func NewRepriceCommand(opts *RootOptions) *cobra.Command {
	var (
		cost      string
		listNames bool
	)

	cmd := &cobra.Command{
		Use:   "reprice <name>",
		Short: "Bulk-update the cost of all records with a name",
		Long: `Set a new unit cost on every record whose name matches (case-insensitive,
exact match). Each record is updated in its own transaction; a failure
partway leaves earlier updates applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			f := opts.formatter(cmd)

			if listNames {
				records, err := a.db.List(cmd.Context())
				if err != nil {
					return WrapExitError(ExitFailure, "list records", err)
				}
				names := inventory.Names(records)
				if f.JSON() {
					return f.Success(names)
				}
				for _, name := range names {
					fmt.Fprintln(f.Writer, name)
				}
				return nil
			}

			if len(args) != 1 {
				return NewExitError(ExitCommandError, "a medicine name is required (or use --list-names)")
			}
			newCost, err := record.ParseCost(cost)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad --cost", err)
			}

			a.warnIfNoSession()

			repricer := inventory.NewRepricer(a.db, logrus.StandardLogger())
			result, err := repricer.ByName(cmd.Context(), args[0], newCost)
			if err != nil {
				// Partial results still matter to the user; show them
				// alongside the failure.
				if result.Matched > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "updated %d of %d matching records\n",
						result.Updated, result.Matched)
				}
				return WrapExitError(ExitFailure, "reprice", err)
			}

			if f.JSON() {
				return f.Success(result)
			}
			if result.Matched == 0 {
				fmt.Fprintf(f.Writer, "no records named %q\n", args[0])
				return nil
			}
			fmt.Fprintf(f.Writer, "repriced %d record(s) to %.2f\n", result.Updated, newCost)
			return nil
		},
	}

	cmd.Flags().StringVar(&cost, "cost", "", "new unit price")
	cmd.Flags().BoolVar(&listNames, "list-names", false, "list distinct medicine names instead of repricing")
	return cmd
}
