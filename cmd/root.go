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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/vocdrill/internal/app"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vocdrill",
	Short: "Spaced-repetition vocabulary drills",
	Long: `vocdrill schedules vocabulary reviews with a six-level mastery ladder.

Each day it assembles a queue of due, recently missed, hard and new items,
records your answers and reports progress and streaks.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./vocdrill.yaml)")
	rootCmd.PersistentFlags().String("driver", "", "database driver: sqlite3, sqlite, postgres, pgx or memory")
	rootCmd.PersistentFlags().String("db", "", "database DSN or sqlite file path")
	rootCmd.PersistentFlags().String("corpus", "", "vocabulary corpus (.json, .csv or .xlsx)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	bindFlagToViper("database.driver", rootCmd.PersistentFlags().Lookup("driver"))
	bindFlagToViper("database.dsn", rootCmd.PersistentFlags().Lookup("db"))
	bindFlagToViper("study.corpus", rootCmd.PersistentFlags().Lookup("corpus"))
	bindFlagToViper("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// withContainer builds the application graph for one command invocation.
func withContainer(ctx context.Context, fn func(context.Context, *app.Container) error) error {
	container, cleanup, err := app.Initialize()
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer cleanup()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, container)
}
