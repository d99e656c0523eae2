package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func tablesFromConfig(key string) []string {
	return normalizeTables(viper.GetStringSlice(key))
}

// normalizeTables lowercases, trims and dedupes table names; nil means "all".
func normalizeTables(values []string) []string {
	names := lo.FilterMap(values, func(value string, _ int) (string, bool) {
		name := strings.ToLower(strings.TrimSpace(value))
		return name, name != ""
	})
	if len(names) == 0 {
		return nil
	}
	return lo.Uniq(names)
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
