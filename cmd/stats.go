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
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize learning progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			summary, err := c.Study.Summarize(ctx)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <item-id>",
	Short: "Show one item and its statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			item, st, err := c.Study.Statistics(ctx, args[0])
			if err != nil {
				return err
			}
			printStatistics(cmd.OutOrStdout(), item, st)
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List reviews per day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			activity, err := c.Study.History(ctx, days)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), activity)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, showCmd, historyCmd)

	historyCmd.Flags().Int("days", 30, "number of days to show, today included")
}
