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

	"github.com/spf13/cobra"

	"github.com/eslsoft/vocdrill/internal/app"
	"github.com/eslsoft/vocdrill/internal/repository"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items with their progress",
	Long: `List corpus items joined with their statistics.

--filter takes a conjunction of CEL comparisons, for example
  category == 'food' && level >= 2
  source.startsWith('ha') && hard
  category in ['food', 'travel'] && next_due <= date('2024-05-01')
Fields: category, source, level, hard, seen, due, next_due.

--order-by takes up to two keys with an optional direction, for example
"level desc, next_due". Keys: category, id, source, level, next_due,
times_wrong, accuracy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		orderBy, _ := cmd.Flags().GetString("order-by")
		page, _ := cmd.Flags().GetInt32("page")
		pageSize, _ := cmd.Flags().GetInt32("page-size")

		query := &repository.ListItemsQuery{
			Pagination:  repository.Pagination{PageNo: page, PageSize: pageSize},
			FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: orderBy},
		}
		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			rows, total, err := c.Study.ListItems(ctx, query)
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), rows, total)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "CEL filter expression")
	listCmd.Flags().String("order-by", "", "sort keys, e.g. \"level desc, id\"")
	listCmd.Flags().Int32("page", 1, "page number")
	listCmd.Flags().Int32("page-size", 0, "page size, 0 lists everything")
}
