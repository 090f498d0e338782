package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"zikkycal.dev/zikkycal/internal/tui"
)

// newAboutCmd creates the about command
func newAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show what ZikkyCal is",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.AboutText)
		},
	}
}

// newLicenseCmd creates the license command
func newLicenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "license",
		Short: "Show the license",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.LicenseText)
		},
	}
}
