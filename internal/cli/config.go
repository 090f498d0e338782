package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"zikkycal.dev/zikkycal/internal/cli/helpers"
	"zikkycal.dev/zikkycal/internal/config"
	"zikkycal.dev/zikkycal/internal/runtime"
	configtui "zikkycal.dev/zikkycal/internal/tui/config"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set user configuration",
		Long: `Get and set user configuration values.

Without a subcommand an interactive editor opens.

Keys:
  theme      dark or light
  share.url  link offered by the share dialog

Examples:
  zikkycal config get theme
  zikkycal config set theme light
  zikkycal config set share.url https://example.com/zikkycal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return configtui.TUIAction(ctx.Splog)
			})
		},
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "get <key>",
		Short:             "Get a configuration value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				value, err := ctx.Config.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a configuration value",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: helpers.CompleteConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				key, value := args[0], args[1]

				cfg := ctx.Config
				if err := cfg.Set(key, value); err != nil {
					return err
				}
				if err := config.Save(cfg); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				ctx.Splog.Info("Set %s to: %s", key, value)
				return nil
			})
		},
	}

	return cmd
}
