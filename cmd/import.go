package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import stats from a CSV export",
	Long:  "Import merges a CSV export into the database. A character already on record is overwritten by the imported row; malformed rows are skipped.",
	Args:  cobra.ExactArgs(1),
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

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()

		ctx := context.Background()
		svc := ledger.NewService(ctx, st.LedgerRepo())
		n, err := svc.ImportCSV(ctx, f)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Printf("Imported %d characters.\n", n)
		return nil
	},
}
