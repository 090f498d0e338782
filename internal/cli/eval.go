package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zikkycal.dev/zikkycal/internal/cli/helpers"
	"zikkycal.dev/zikkycal/internal/engine"
	"zikkycal.dev/zikkycal/internal/runtime"
	"zikkycal.dev/zikkycal/internal/tui/style"
	"zikkycal.dev/zikkycal/internal/utils"
)

// newEvalCmd creates the eval command
func newEvalCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "eval [tokens...]",
		Short: "Replay key presses through the calculator and print the display",
		Long: `Replay key presses through a fresh calculator and print what it shows.

Tokens are key names (0-9 . + - * / = enter esc backspace ^ ( )),
action names (square, sqrt, power, paren, equals, clear, del) or
numbers such as 12.5, which are typed one character at a time.
Without arguments the tokens are read from standard input.

Examples:
  zikkycal eval 12 + 3 =
  zikkycal eval 2 power 10 =
  zikkycal eval --trace 5 + 3 + 2 =`,
		ValidArgsFunction: helpers.CompleteTokens,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args, trace)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print the token, display and state after every token")

	return cmd
}

// runEval replays tokens from args, or from stdin when args is empty
func runEval(cmd *cobra.Command, args []string, trace bool) error {
	tokens := args
	if len(tokens) == 0 {
		input, err := readInput(cmd)
		if err != nil {
			return fmt.Errorf("failed to read tokens: %w", err)
		}
		tokens = strings.Fields(input)
	}

	return helpers.Run(cmd, func(ctx *runtime.Context) error {
		out := cmd.OutOrStdout()
		eng := ctx.NewEngine(nil)

		for _, tok := range tokens {
			events, err := engine.ParseTokens([]string{tok})
			if err != nil {
				return err
			}
			for _, ev := range events {
				if err := engine.Dispatch(eng, ev); err != nil {
					return fmt.Errorf("token %q: %w", tok, err)
				}
			}
			if trace {
				fmt.Fprintf(out, "%s\t%s\t%s\n", tok, eng.Display(), style.ColorDim(eng.State().String()))
			}
		}

		if !trace {
			fmt.Fprintln(out, style.ColorResult(eng.Display()))
		}
		return nil
	})
}

func readInput(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if in == os.Stdin {
		return utils.ReadFromStdin()
	}
	return utils.ReadAll(in)
}
