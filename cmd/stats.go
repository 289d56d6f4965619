package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/junhao/radmaster/internal/catalog"
	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-character accuracy",
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

		ctx := context.Background()
		svc := ledger.NewService(ctx, st.LedgerRepo())
		entries := svc.Entries()
		if len(entries) == 0 {
			fmt.Println("No characters recorded yet.")
			return nil
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Tested > entries[j].Tested
		})

		// Header.
		fmt.Printf("%-4s  %-12s  %-24s  %7s  %7s  %7s  %9s\n",
			"字", "Pinyin", "Meaning", "Tested", "Right", "Wrong", "Accuracy")
		fmt.Println(strings.Repeat("─", 82))

		for _, e := range entries {
			pinyin, meaning := "—", "—"
			if c, ok := catalog.Find(e.Glyph); ok {
				pinyin, meaning = c.Pinyin, c.Meaning
			}
			if len(meaning) > 24 {
				meaning = meaning[:24]
			}
			fmt.Printf("%-4s  %-12s  %-24s  %7d  %7d  %7d  %8.1f%%\n",
				e.Glyph, pinyin, meaning, e.Tested, e.Correct, e.Wrong, e.Accuracy())
		}
		return nil
	},
}
