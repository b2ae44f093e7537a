package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cfpath/internal/pathid"
)

// ConcatResult is the payload produced by the concat command.
type ConcatResult struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Path  string `json:"path"`
	Num   uint64 `json:"num"`
	Den   uint64 `json:"den"`
}

// NewConcatCommand creates the concat command.
func NewConcatCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "concat <path> <path>",
		Short: "Concatenate two paths via their identifiers",
		Long: `Concatenate two path vectors by multiplying their identifiers.

Because the encoding is a matrix product, the combined identifier is
computed in a single multiplication without decoding either input.

Example:
  cfpath concat 3 12.5`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConcat(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runConcat(opts *RootOptions, leftText, rightText string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	left, err := pathid.Parse(leftText)
	if err != nil {
		exitCode, errCode := classifyPathError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}
	right, err := pathid.Parse(rightText)
	if err != nil {
		exitCode, errCode := classifyPathError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	combined, err := left.Concat(right)
	if err != nil {
		exitCode, errCode := classifyPathError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	num, den := combined.Rational()
	result := &ConcatResult{
		Left:  left.String(),
		Right: right.String(),
		Path:  combined.String(),
		Num:   num,
		Den:   den,
	}

	return outputConcatSuccess(formatter, result)
}

// outputConcatSuccess outputs a successful concat result.
func outputConcatSuccess(formatter *OutputFormatter, result *ConcatResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "left:     %s\n", displayPath(result.Left))
	fmt.Fprintf(formatter.Writer, "right:    %s\n", displayPath(result.Right))
	fmt.Fprintf(formatter.Writer, "path:     %s\n", displayPath(result.Path))
	fmt.Fprintf(formatter.Writer, "rational: %d/%d\n", result.Num, result.Den)
	return nil
}
