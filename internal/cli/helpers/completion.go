// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"zikkycal.dev/zikkycal/internal/config"
	"zikkycal.dev/zikkycal/internal/engine"
)

// CompleteConfigKeys is a cobra.ValidArgsFunction that completes the key
// argument of config get/set and, for set, the theme names.
func CompleteConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return config.Keys(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		if args[0] == config.KeyTheme {
			return config.Themes, cobra.ShellCompDirectiveNoFileComp
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// CompleteTokens is a cobra.ValidArgsFunction that completes eval tokens
func CompleteTokens(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return engine.TokenNames(), cobra.ShellCompDirectiveNoFileComp
}
