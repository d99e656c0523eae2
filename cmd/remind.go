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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eslsoft/vocdrill/internal/app"
)

// remindCmd keeps running and logs the size of today's queue once a day.
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the daily study reminder until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now, _ := cmd.Flags().GetBool("now")

		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			logger := c.Logger
			job := c.Reminder

			if now {
				if _, err := job.Check(ctx); err != nil {
					return err
				}
			}
			if err := job.Start(); err != nil {
				return err
			}
			defer job.Stop()

			// Graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			select {
			case sig := <-sigCh:
				logger.Infof("received signal: %s, shutting down", sig)
			case <-ctx.Done():
				logger.Info("context canceled, shutting down")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)

	remindCmd.Flags().String("at", "", "daily reminder time in UTC, HH:MM (default remind.at)")
	remindCmd.Flags().Bool("now", false, "also check once immediately")

	bindFlagToViper("remind.at", remindCmd.Flags().Lookup("at"))
}
