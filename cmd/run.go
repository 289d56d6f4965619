package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/junhao/radmaster/internal/app"
	"github.com/junhao/radmaster/internal/enrich"
	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/speech"
	"github.com/junhao/radmaster/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Ledger:  ledger.NewService(ctx, st.LedgerRepo()),
		Speaker: speech.New(),
	}

	// Enrichment is optional — the app works without it.
	provider, err := enrich.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Custom lists will only match the built-in catalog.")
	} else {
		opts.Lookup = enrich.NewLookup(provider, enrich.DefaultLookupTimeout)
	}

	return app.Run(opts)
}
