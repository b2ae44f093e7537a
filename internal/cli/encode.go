package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cfpath/internal/pathid"
)

// EncodeResult is the payload produced by the encode command.
type EncodeResult struct {
	Path   string    `json:"path"`
	Matrix [4]uint64 `json:"matrix"`
	Num    uint64    `json:"num"`
	Den    uint64    `json:"den"`
	Depth  int       `json:"depth"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <path>",
		Short: "Encode a dot-separated path into its identifier",
		Long: `Encode a dot-separated path vector into its identifier.

The identifier is printed both as the 2x2 matrix of the underlying
continued-fraction construction and as the equivalent reduced rational.
An empty path ("") encodes to the root identifier.

Example:
  cfpath encode 3.12.5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args[0], cmd)
		},
	}
}

func runEncode(opts *RootOptions, text string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	id, err := pathid.Parse(text)
	if err != nil {
		exitCode, errCode := classifyPathError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	a, b, c, d := id.Matrix()
	num, den := id.Rational()
	result := &EncodeResult{
		Path:   id.String(),
		Matrix: [4]uint64{a, b, c, d},
		Num:    num,
		Den:    den,
		Depth:  id.Depth(),
	}

	formatter.VerboseLog("encoded %d element(s)", result.Depth)
	return outputEncodeSuccess(formatter, result)
}

// outputEncodeSuccess outputs a successful encode result.
func outputEncodeSuccess(formatter *OutputFormatter, result *EncodeResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "path:     %s\n", displayPath(result.Path))
	fmt.Fprintf(formatter.Writer, "matrix:   %v\n", result.Matrix)
	fmt.Fprintf(formatter.Writer, "rational: %d/%d\n", result.Num, result.Den)
	fmt.Fprintf(formatter.Writer, "depth:    %d\n", result.Depth)
	return nil
}

// displayPath renders the empty (root) path visibly in text output.
func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
