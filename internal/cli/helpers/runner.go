package helpers

import (
	"github.com/spf13/cobra"

	"zikkycal.dev/zikkycal/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function.
// The session log is closed when fn returns.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}
