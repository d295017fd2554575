package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/record"
	"github.com/shahrukh04/medicine-management-app/internal/store"
)

// NewUpdateCommand creates the update command.
//
// The storage layer only does full-record upserts, so the merge happens
// here: fetch the stored record, overlay the flags the user actually set,
// and write the whole thing back.
func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	rf := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a medicine record",
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
			a.warnIfNoSession()

			m, err := a.db.GetByID(cmd.Context(), id)
			if store.IsNotFound(err) {
				return WrapExitError(ExitFailure, "record not found", err)
			}
			if err != nil {
				return WrapExitError(ExitFailure, "get record", err)
			}

			if err := mergeFlags(cmd, rf, &m); err != nil {
				return err
			}

			updated, err := a.db.Update(cmd.Context(), m)
			if err != nil {
				return WrapExitError(ExitFailure, "update record", err)
			}

			f := opts.formatter(cmd)
			if f.JSON() {
				return f.Success(updated)
			}
			fmt.Fprintf(f.Writer, "updated %q (id %d, total %.2f)\n", updated.Name, updated.ID, updated.TotalPayment)
			return nil
		},
	}

	rf.register(cmd)
	return cmd
}

// mergeFlags overlays set flags onto the stored record, parsing each value
// at the boundary.
func mergeFlags(cmd *cobra.Command, rf *recordFlags, m *record.Medicine) error {
	if cmd.Flags().Changed("name") {
		if rf.name == "" {
			return NewExitError(ExitCommandError, "--name must not be empty")
		}
		m.Name = rf.name
	}
	if cmd.Flags().Changed("cost") {
		cost, err := record.ParseCost(rf.cost)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad --cost", err)
		}
		m.Cost = cost
	}
	if cmd.Flags().Changed("quantity") {
		quantity, err := record.ParseQuantity(rf.quantity)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad --quantity", err)
		}
		m.Quantity = quantity
	}
	if cmd.Flags().Changed("purchase-date") {
		d, err := record.ParseDate(rf.purchaseDate)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad --purchase-date", err)
		}
		m.PurchaseDate = d
	}
	if cmd.Flags().Changed("expiry-date") {
		d, err := record.ParseDate(rf.expiryDate)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad --expiry-date", err)
		}
		m.ExpiryDate = d
	}
	return nil
}
