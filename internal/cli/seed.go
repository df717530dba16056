package cli

import (
	"fmt"
	"log"

	"dictionduel/internal/bank"
	"dictionduel/internal/config"
	"github.com/spf13/cobra"
)

// NewSeedCmd loads the bundled word list into the word_pairs table so the
// server can run with a Postgres-backed question source.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the word_pairs table from the word list file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			if err := runMigrationsWithConfig(ctx, cfg); err != nil {
				return err
			}

			pairs, err := bank.NewFileSource(wordListPath(cfg)).LoadWordPairs(ctx)
			if err != nil {
				return err
			}

			db := openBunDB(cfg.Postgres.URL)
			defer db.Close()

			if _, err := db.ExecContext(ctx, `TRUNCATE word_pairs RESTART IDENTITY`); err != nil {
				return fmt.Errorf("truncate word_pairs: %w", err)
			}
			for _, pair := range pairs {
				if _, err := db.ExecContext(ctx,
					`INSERT INTO word_pairs (correct, wrong, explanation) VALUES (?, ?, ?)`,
					pair.Correct, pair.Wrong, pair.Explanation,
				); err != nil {
					return fmt.Errorf("insert word pair %q: %w", pair.Correct, err)
				}
			}
			log.Printf("seeded %d word pairs", len(pairs))
			return nil
		},
	}
}
