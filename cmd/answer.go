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
	"github.com/eslsoft/vocdrill/internal/entity"
)

var answerCmd = &cobra.Command{
	Use:     "answer <item-id> <correct|wrong|skip>",
	Aliases: []string{"a"},
	Short:   "Record the result of one review",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, err := entity.ParseOutcome(args[1])
		if err != nil {
			return err
		}
		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			st, err := c.Study.ApplyResult(ctx, args[0], outcome)
			if err != nil {
				return err
			}
			cmd.Printf("%s: %s, level %d (%s), next due %s\n",
				st.ItemID, outcome, st.Level, entity.LevelName(st.Level), dateOrDash(st.NextDue))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(answerCmd)
}
