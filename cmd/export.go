package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export stats as CSV (stdout if no file given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		svc := ledger.NewService(context.Background(), st.LedgerRepo())

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		if err := svc.ExportCSV(out); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if len(args) == 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d characters to %s\n", svc.Len(), args[0])
		}
		return nil
	},
}
