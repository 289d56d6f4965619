package cmd

import (
	"context"
	"fmt"

	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		svc := ledger.NewService(ctx, st.LedgerRepo())
		if svc.Len() == 0 {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !force {
			return fmt.Errorf("refusing to delete stats for %d characters without --force", svc.Len())
		}

		if err := svc.Clear(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("All stats cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
