/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/eslsoft/vocdrill/internal/app"
	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/eslsoft/vocdrill/internal/infrastructure/database"
	"github.com/eslsoft/vocdrill/internal/infrastructure/logger"
)

// dbInitCmd migrates the progress database and checks it against the corpus.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Create the progress database and validate the corpus",
	Long: `Run the schema migrations, load the corpus and report records that no
longer match any corpus item. Such orphans are ignored by every other command;
--prune deletes them. Use --schema-only to migrate without a corpus.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaOnly, _ := cmd.Flags().GetBool("schema-only")
		prune, _ := cmd.Flags().GetBool("prune")
		if schemaOnly {
			return runMigrations(cmd)
		}

		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			items, err := c.Corpus.All(ctx)
			if err != nil {
				return err
			}
			stats, err := c.Stores.Statistics.List(ctx)
			if err != nil {
				return err
			}
			categories := lo.Uniq(lo.Map(items, func(item entity.VocabularyItem, _ int) string { return item.Category }))
			cmd.Printf("corpus %s: %d items in %d categories\n", c.Config.Study.Corpus, len(items), len(categories))
			cmd.Printf("progress records: %d\n", len(stats))

			orphans := findOrphans(items, stats)
			if len(orphans) == 0 {
				return nil
			}
			cmd.Printf("orphan records: %d\n", len(orphans))
			for _, id := range orphans {
				if !prune {
					cmd.Printf("  %s\n", id)
					continue
				}
				if err := c.Study.ResetOne(ctx, id); err != nil {
					return fmt.Errorf("prune %s: %w", id, err)
				}
				cmd.Printf("  %s pruned\n", id)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().Bool("schema-only", false, "only run migrations, skip the corpus check")
	dbInitCmd.Flags().Bool("prune", false, "delete progress records of items missing from the corpus")
}

func runMigrations(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return err
	}
	if driver == config.DriverMemory {
		cmd.Println("memory driver has no schema")
		return nil
	}
	log, err := logger.NewLogger(cfg)
	if err != nil {
		return err
	}
	_, cleanup, err := database.NewConnection(cfg, log)
	if err != nil {
		return err
	}
	cleanup()
	cmd.Printf("schema up to date (%s)\n", driver)
	return nil
}

// findOrphans returns the sorted ids of records without a corpus item.
func findOrphans(items []entity.VocabularyItem, stats []entity.ItemStatistics) []string {
	known := lo.SliceToMap(items, func(item entity.VocabularyItem) (string, struct{}) { return item.ID, struct{}{} })
	orphans := lo.FilterMap(stats, func(st entity.ItemStatistics, _ int) (string, bool) {
		_, ok := known[st.ItemID]
		return st.ItemID, !ok
	})
	sort.Strings(orphans)
	return orphans
}
