package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"zikkycal.dev/zikkycal/internal/cli/helpers"
	"zikkycal.dev/zikkycal/internal/runtime"
	"zikkycal.dev/zikkycal/internal/utils"
)

// Share actions, swapped out in tests
var (
	copyToClipboard = clipboard.WriteAll
	openBrowser     = utils.OpenBrowser
)

// newShareCmd creates the share command
func newShareCmd() *cobra.Command {
	var (
		copyLink bool
		openLink bool
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the ZikkyCal share link",
		Long: `Print the ZikkyCal share link, optionally copying it to the clipboard
or opening it in the browser. The link comes from the share.url setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				url := ctx.Config.Share.URL
				fmt.Fprintln(cmd.OutOrStdout(), url)

				if copyLink {
					if err := copyToClipboard(url); err != nil {
						return fmt.Errorf("copy failed: %w", err)
					}
					ctx.Splog.Info("Link copied to clipboard!")
				}
				if openLink {
					ctx.Splog.Info("Opening link...")
					if err := openBrowser(url); err != nil {
						return fmt.Errorf("could not open %s: %w", url, err)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&copyLink, "copy", false, "Copy the link to the clipboard")
	cmd.Flags().BoolVar(&openLink, "open", false, "Open the link in the browser")

	return cmd
}
