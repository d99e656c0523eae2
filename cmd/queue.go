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

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show today's study queue",
	Long: `Build today's queue from the corpus and the recorded progress.

Items are grouped by bucket in priority order: due, recently wrong, hard,
new and mixed review. With --flat the buckets are concatenated and the
categories interleaved, which is the order a session should follow.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, _ := cmd.Flags().GetInt("goal")
		flat, _ := cmd.Flags().GetBool("flat")

		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			if goal <= 0 {
				goal = c.Config.Study.DailyGoal
			}
			if flat {
				items, err := c.Study.DailySessionQueue(ctx, goal)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), items)
				return nil
			}
			queue, err := c.Study.BuildDailyQueue(ctx, goal)
			if err != nil {
				return err
			}
			printQueue(cmd.OutOrStdout(), queue)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(queueCmd)

	queueCmd.Flags().IntP("goal", "g", 0, "daily goal (default study.daily_goal)")
	queueCmd.Flags().Bool("flat", false, "print the interleaved session order")
}
