// Package cli — run.go implements the scaffold run behind the root command.
//
// Steps:
//  1. Pick the directory set (built-in default or --layout file)
//  2. Resolve the scaffold root
//  3. Create the directories, or only plan them with --dry-run
//  4. Look up the GitHub repository for the secrets page (best effort)
//  5. Print the checklist, the dry-run plan, or the JSON report
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinashe-code/pole-setup/internal/layout"
	"github.com/tinashe-code/pole-setup/internal/model"
	"github.com/tinashe-code/pole-setup/internal/repo"
	"github.com/tinashe-code/pole-setup/internal/scaffold"
)

// runScaffold is the orchestration function for the root command.
func runScaffold(cmd *cobra.Command, flags *runFlags) error {
	dirs := layout.Default()
	if flags.layout != "" {
		loaded, err := layout.Load(flags.layout)
		if err != nil {
			return err // Load already returns CLIError
		}
		dirs = loaded
		VerboseLog("Layout file: %s", flags.layout)
	}
	VerboseLog("Directory set: %d entries", len(dirs))

	root, err := scaffold.ResolveRoot(flags.root)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve scaffold root", err)
	}
	VerboseLog("Scaffold root: %s", root)

	s := scaffold.New(VerboseLog)

	var results []model.DirResult
	if flags.dryRun {
		results, err = s.Plan(root, dirs)
	} else {
		results, err = s.EnsureDirectories(root, dirs)
	}
	if err != nil {
		return model.WrapCLIError(model.ExitFilesystemError, "scaffolding failed", err)
	}

	report := &model.Report{
		Root:        root,
		DryRun:      flags.dryRun,
		Directories: results,
		Secrets:     model.DeploySecrets(),
		SecretsURL:  lookupSecretsURL(root),
	}

	out := cmd.OutOrStdout()
	switch {
	case IsJSONOutput():
		return printReportJSON(out, report)
	case flags.dryRun:
		printPlanText(out, report)
	default:
		scaffold.PrintInstructions(out)
	}
	return nil
}

// lookupSecretsURL returns the GitHub Actions secrets page for the
// repository containing root, or "" when there is none. Failures are
// only traced; they never fail the run.
func lookupSecretsURL(root string) string {
	if _, err := os.Stat(root); err != nil {
		VerboseLog("Skipping repository detection: %v", err)
		return ""
	}

	gh, err := repo.NewDetector().GitHubRepo(root)
	if err != nil {
		VerboseLog("No GitHub repository detected: %v", err)
		return ""
	}

	url := gh.SecretsURL()
	VerboseLog("GitHub repository %s, secrets page: %s", gh, url)
	return url
}

// printReportJSON writes the report as indented JSON.
func printReportJSON(w io.Writer, report *model.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printPlanText lists each directory with its planned status.
//
//	planned  backend
//	exists   docs
func printPlanText(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "Dry run under %s:\n", report.Root)
	for _, d := range report.Directories {
		fmt.Fprintf(w, "  %-8s %s\n", d.Status, d.Path)
	}
	counts := report.Counts()
	fmt.Fprintf(w, "%d to create, %d already present.\n",
		counts[model.StatusPlanned], counts[model.StatusExists])
}
