package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wedding-planner/internal/export"
)

func newExportCmd(f *flags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the guest list and seating plan to an Excel file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), cmd, *f)
			if err != nil {
				return err
			}
			defer a.store.Close()

			path, err := export.NewWriter(a.prefs.ExportDir).Export(out, a.model.AddressBook())
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seating plan exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: a new file in the export directory)")
	return cmd
}
