package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cfpath/internal/pathid"
)

// DecodeResult is the payload produced by the decode command.
type DecodeResult struct {
	Num      uint64   `json:"num"`
	Den      uint64   `json:"den"`
	Path     string   `json:"path"`
	Elements []uint64 `json:"elements"`
	Depth    int      `json:"depth"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <num>/<den>",
		Short: "Decode a rational identifier back into its path",
		Long: `Decode a rational path identifier back into the exact path vector
that produced it. The root identifier is 1/0 and decodes to the empty
path.

Example:
  cfpath decode 502/99`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], cmd)
		},
	}
}

func runDecode(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	num, den, err := parseRationalArg(arg)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeBadArgs, err.Error(), nil)
	}

	id, err := pathid.FromRational(num, den)
	if err != nil {
		exitCode, errCode := classifyPathError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	result := &DecodeResult{
		Num:      num,
		Den:      den,
		Path:     id.String(),
		Elements: id.Vector(),
		Depth:    id.Depth(),
	}

	formatter.VerboseLog("decoded %d element(s)", result.Depth)
	return outputDecodeSuccess(formatter, result)
}

// parseRationalArg splits "num/den" into its two uint64 halves.
func parseRationalArg(arg string) (num, den uint64, err error) {
	numText, denText, ok := strings.Cut(arg, "/")
	if !ok {
		return 0, 0, fmt.Errorf("expected <num>/<den>, got %q", arg)
	}
	num, err = strconv.ParseUint(numText, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("numerator %q is not a non-negative integer", numText)
	}
	den, err = strconv.ParseUint(denText, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("denominator %q is not a non-negative integer", denText)
	}
	return num, den, nil
}

// outputDecodeSuccess outputs a successful decode result.
func outputDecodeSuccess(formatter *OutputFormatter, result *DecodeResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "rational: %d/%d\n", result.Num, result.Den)
	fmt.Fprintf(formatter.Writer, "path:     %s\n", displayPath(result.Path))
	fmt.Fprintf(formatter.Writer, "elements: %v\n", result.Elements)
	fmt.Fprintf(formatter.Writer, "depth:    %d\n", result.Depth)
	return nil
}
