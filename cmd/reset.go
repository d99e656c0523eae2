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
	"errors"

	"github.com/spf13/cobra"

	"github.com/eslsoft/vocdrill/internal/app"
)

var resetCmd = &cobra.Command{
	Use:   "reset [item-id]",
	Short: "Forget the progress of one item, or of everything with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		switch {
		case all && len(args) > 0:
			return errors.New("pass either an item id or --all, not both")
		case !all && len(args) == 0:
			return errors.New("pass an item id or --all")
		}

		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			if all {
				if err := c.Study.ResetAll(ctx); err != nil {
					return err
				}
				cmd.Println("all progress reset")
				return nil
			}
			if err := c.Study.ResetOne(ctx, args[0]); err != nil {
				return err
			}
			cmd.Printf("%s reset\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().Bool("all", false, "reset every item and the review history")
}
