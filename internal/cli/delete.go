package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command. Deleting an id that does
// not exist succeeds: key-store delete semantics.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a medicine record",
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

			if err := a.db.Remove(cmd.Context(), id); err != nil {
				return WrapExitError(ExitFailure, "delete record", err)
			}

			f := opts.formatter(cmd)
			if f.JSON() {
				return f.Success(map[string]any{"deleted": id})
			}
			fmt.Fprintf(f.Writer, "deleted %d\n", id)
			return nil
		},
	}
}

// NewClearCommand creates the clear command: delete every record in one
// atomic transaction. Refuses to run without --force.
func NewClearCommand(opts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all medicine records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return NewExitError(ExitCommandError, "refusing to clear all records without --force")
			}

			a, err := opts.openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			a.warnIfNoSession()

			if err := a.db.Clear(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "clear records", err)
			}

			f := opts.formatter(cmd)
			if f.JSON() {
				return f.Success(map[string]any{"cleared": true})
			}
			fmt.Fprintln(f.Writer, "all records deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "actually delete everything")
	return cmd
}
