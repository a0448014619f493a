// Package cli implements the cobra-based command line for pole-setup.
//
// The tool has a single command: it scaffolds the project directories and
// prints the manual deployment checklist. This file defines the root
// command, its flags, and the translation of errors into exit codes.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinashe-code/pole-setup/internal/model"
)

// Global flag variables. They are bound to persistent flags so that the
// error printer and VerboseLog can consult them outside of RunE.
var (
	// jsonOutput switches stdout from the fixed text block to a JSON report.
	jsonOutput bool

	// verbose enables [verbose] trace lines on stderr.
	verbose bool

	// logOut is where VerboseLog writes. It follows the command's error
	// stream so tests can capture it.
	logOut io.Writer = os.Stderr
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

// runFlags holds the flag values for the scaffold run.
type runFlags struct {
	root   string // --root: scaffold under this path instead of the cwd
	layout string // --layout: JSONC/YAML file replacing the default directories
	dryRun bool   // --dry-run: report only, create nothing
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "pole-setup",
		Short: "Scaffold the pole extractor project layout",
		Long: `pole-setup creates the directory skeleton for the KML pole number
extractor (backend, frontend, docs, GitHub workflows and the backend's
working folders) and prints the secrets that must be configured by hand
before the deploy workflow can run.

Running it again is safe: existing directories are left as they are.

Examples:
  pole-setup
  pole-setup --root ./pole-extractor
  pole-setup --layout layout.yaml --dry-run
  pole-setup --json`,

		Args: cobra.NoArgs,

		// Errors and usage are printed by Execute so that --json can
		// change their format.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOut = cmd.ErrOrStderr()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVar(&flags.root, "root", "", "Directory to scaffold under (default: current directory)")
	rootCmd.Flags().StringVar(&flags.layout, "layout", "", "Layout file (.json, .jsonc, .yaml, .yml) replacing the default directories")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be created without touching the filesystem")

	return rootCmd
}

// Execute runs the root command and exits the process with the mapped
// exit code on failure. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if code := Run(rootCmd); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// Run executes rootCmd, prints any error to its error stream, and returns
// the exit code. It never calls os.Exit.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
	} else {
		printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	}
	return ExitCodeFor(err)
}

// ExitCodeFor maps an error returned by a command to a process exit code.
func ExitCodeFor(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
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
		// stderr even in JSON mode: stdout is reserved for the report.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(logOut, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
