package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/junhao/radmaster/internal/catalog"
	"github.com/junhao/radmaster/internal/enrich"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <text>",
	Short: "Look up unknown characters through the configured LLM",
	Long:  "Enrich extracts the Chinese characters from text and resolves the ones missing from the built-in catalog through the configured LLM provider. Useful for checking provider setup before playing.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		text := strings.Join(args, " ")

		glyphs := catalog.ExtractHan(text)
		if len(glyphs) == 0 {
			return fmt.Errorf("no Chinese characters in %q", text)
		}

		var missing []string
		for _, g := range glyphs {
			if c, ok := catalog.Find(g); ok {
				fmt.Printf("%-4s %-12s %s  (catalog)\n", c.Glyph, c.Pinyin, c.Meaning)
			} else {
				missing = append(missing, g)
			}
		}
		if len(missing) == 0 {
			return nil
		}

		provider, err := enrich.NewProviderFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("no provider for %v: %w", missing, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Resolving %d characters via %s...\n", len(missing), provider.ModelID())

		lookup := enrich.NewLookup(provider, enrich.DefaultLookupTimeout)
		resolved := lookup.Characters(ctx, missing)
		if len(resolved) == 0 {
			return fmt.Errorf("lookup returned nothing for %v", missing)
		}

		found := make(map[string]bool, len(resolved))
		for _, c := range resolved {
			found[c.Glyph] = true
			fmt.Printf("%-4s %-12s %s  (enriched)\n", c.Glyph, c.Pinyin, c.Meaning)
		}
		for _, g := range missing {
			if !found[g] {
				fmt.Printf("%-4s unresolved\n", g)
			}
		}
		return nil
	},
}
