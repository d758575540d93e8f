// Package cli implements the cobra-based command line for cmapgen.
//
// cmapgen has a single root command: every flag describes one colormap run.
// This file defines the command, its flags, and the exit-code handling;
// generate.go holds the run itself and messages.go the terminal output.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/cmapgen/internal/model"
	"github.com/shinji-kodama/cmapgen/internal/palette"
)

// Global flag variables shared by the logging helpers.
var (
	// jsonOutput controls whether the run summary and errors are formatted
	// as JSON for machine consumption.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about each step is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// usageLine is printed, together with the accepted colour names, when the
// command line cannot be parsed.
const usageLine = "Usage: cmapgen --colours <start,end> [--colours <start,end> ...] [--percentages <p1,p2,...>] --outputfile <FILE>"

// rootFlags holds the flag values of one command instance.
type rootFlags struct {
	colours     []string // -c/--colours: one "start,end" interval per occurrence
	percentages string   // -p/--percentages: comma-separated integer weights
	outputFile  string   // -o/--outputfile: destination colormap path
	configFile  string   // --config: YAML or JSONC preset
	listColours bool     // --list-colours: print accepted names and exit
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "cmapgen",
		Short: "Generate ncview colormaps from named colour intervals",
		Long: `cmapgen builds a 256-entry RGB colormap for ncview from an ordered list of
colour intervals. Each --colours occurrence adds one interval from a start
colour to an end colour; the 256 slots are shared between intervals equally,
or according to --percentages.

Colours are CSS names (red, cornflowerblue, ...), single-letter base colours
(r, g, b, c, m, y, k, w), Tableau colours (tab:blue, ...) or hex (#1f77b4).

Examples:
  cmapgen -c red,blue -o redblue.ncmap
  cmapgen -c red,green -c green,blue -p 30,70 -o rgb.ncmap
  cmapgen --config ocean.yaml -o ocean.ncmap`,

		// Positional arguments are a usage error, not silently ignored.
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return model.NewCLIError(model.ExitUsage,
					fmt.Sprintf("unexpected argument(s): %s", strings.Join(args, " ")))
			}
			return nil
		},

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.listColours {
				return printColourNames(cmd.OutOrStdout())
			}
			return runGenerate(cmd, flags)
		},
	}

	// Malformed flags map to the usage exit code instead of the generic one.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
	})

	// StringArray rather than StringSlice: each occurrence must stay one
	// interval, and StringSlice would split on the commas.
	rootCmd.Flags().StringArrayVarP(&flags.colours, "colours", "c", nil, "Comma-separated start,end colours of one interval (repeatable)")
	rootCmd.Flags().StringVarP(&flags.percentages, "percentages", "p", "", "Comma-separated integer share of each interval, summing to 100")
	rootCmd.Flags().StringVarP(&flags.outputFile, "outputfile", "o", "", "Output colormap file")
	rootCmd.Flags().StringVar(&flags.configFile, "config", "", "YAML or JSONC preset file providing intervals, percentages and output")
	rootCmd.Flags().BoolVar(&flags.listColours, "list-colours", false, "List accepted colour names and exit")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(Run(rootCmd, os.Stderr)))
}

// Run executes the command, reports any error on stderr, and returns the
// exit code the process should terminate with.
//
// CLIError values carry their own exit code; other errors map to
// model.ExitValidation. Usage errors additionally print the usage line and
// the accepted colour names.
func Run(rootCmd *cobra.Command, stderr io.Writer) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	code := ExitCodeOf(err)

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(stderr, cliErr.Message, cliErr.Err)
	} else {
		printError(stderr, err.Error(), nil)
	}

	if code == model.ExitUsage && !IsJSONOutput() {
		fmt.Fprintln(stderr, usageLine)
		fmt.Fprintln(stderr, "where each value is a comma-separated list of named colours.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Allowed colours are:")
		fmt.Fprintln(stderr, strings.Join(palette.Names(), ", "))
	}

	return code
}

// ExitCodeOf maps an error returned by the root command to an exit code.
func ExitCodeOf(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitValidation
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if IsJSONOutput() {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		message = fmt.Sprintf("%s: %v", message, underlying)
	}
	fmt.Fprintln(w, errorLabel(w)+" -- "+message)
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}

func printColourNames(w io.Writer) error {
	for _, n := range palette.Names() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
