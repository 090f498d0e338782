package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"zikkycal.dev/zikkycal/internal/cli/helpers"
	"zikkycal.dev/zikkycal/internal/config"
	"zikkycal.dev/zikkycal/internal/runtime"
	"zikkycal.dev/zikkycal/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zikkycal",
		Short: "ZikkyCal is a small keypad calculator for the terminal",
		Long: `ZikkyCal is a small keypad calculator for the terminal.

Run it in a terminal to open the calculator. When input is piped in,
the tokens are replayed like 'zikkycal eval':

  echo "12 + 3 =" | zikkycal`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTTY() {
				return runEval(cmd, nil, false)
			}
			return helpers.Run(cmd, runCalculator)
		},
	}

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newAboutCmd())
	rootCmd.AddCommand(newLicenseCmd())
	rootCmd.AddCommand(newShareCmd())

	return rootCmd
}

func runCalculator(ctx *runtime.Context) error {
	// The calculator owns the screen until it exits
	ctx.Splog.SetQuiet(true)
	defer ctx.Splog.SetQuiet(false)

	return tui.RunCalculator(tui.CalculatorOptions{
		Theme:     ctx.Config.Theme,
		ShareURL:  ctx.Config.Share.URL,
		Logger:    ctx.Splog.FileLogger(),
		SaveTheme: saveTheme,
	})
}

// saveTheme persists a theme chosen in the calculator
func saveTheme(theme string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(config.KeyTheme, theme); err != nil {
		return err
	}
	return config.Save(cfg)
}
