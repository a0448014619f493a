package model

import (
	"fmt"
	"strings"
)

// DirectorySet is an ordered list of directory paths relative to the
// scaffold root. Order is preserved when creating and reporting so that
// output is reproducible between runs.
type DirectorySet []string

// Clone returns an independent copy of the set. Callers that hand out the
// default layout use this so nobody can mutate the shared slice.
func (s DirectorySet) Clone() DirectorySet {
	if s == nil {
		return nil
	}
	out := make(DirectorySet, len(s))
	copy(out, s)
	return out
}

// DirStatus describes what the scaffolder did (or would do) with one path.
type DirStatus string

const (
	// StatusCreated indicates the directory did not exist and was created.
	StatusCreated DirStatus = "created"

	// StatusExists indicates the directory was already present. This is
	// the idempotent case and counts as success.
	StatusExists DirStatus = "exists"

	// StatusPlanned indicates a dry run found the directory missing.
	// Nothing was written.
	StatusPlanned DirStatus = "planned"
)

// String returns the string representation of DirStatus.
func (s DirStatus) String() string {
	return string(s)
}

// IsValid checks whether the DirStatus value is one of the predefined states.
func (s DirStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusExists, StatusPlanned:
		return true
	default:
		return false
	}
}

// ParseDirStatus converts a string to a DirStatus.
// Returns an error if the string does not match any valid status.
func ParseDirStatus(s string) (DirStatus, error) {
	status := DirStatus(strings.ToLower(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid directory status: %q (valid: created, exists, planned)", s)
	}
	return status, nil
}

// DirResult is the outcome for a single entry of a DirectorySet.
type DirResult struct {
	// Path is the entry as listed in the directory set, slash-separated.
	Path string `json:"path"`

	// AbsPath is the absolute filesystem path under the scaffold root.
	AbsPath string `json:"absPath"`

	// Status records whether the directory was created, already existed,
	// or is only planned (dry run).
	Status DirStatus `json:"status"`
}

// Report is the machine-readable summary printed by --json.
type Report struct {
	// Root is the absolute scaffold root.
	Root string `json:"root"`

	// DryRun is true when no directories were actually created.
	DryRun bool `json:"dryRun"`

	// Directories holds one result per directory set entry, in order.
	Directories []DirResult `json:"directories"`

	// Secrets lists the secrets the deploy workflow expects in the
	// hosting repository's secret store.
	Secrets []Secret `json:"secrets"`

	// SecretsURL points directly at the GitHub Actions secrets page when
	// the root sits inside a clone with a GitHub origin. Empty otherwise.
	SecretsURL string `json:"secretsUrl,omitempty"`
}

// Counts returns how many results carry each status.
func (r *Report) Counts() map[DirStatus]int {
	counts := make(map[DirStatus]int, 3)
	for _, d := range r.Directories {
		counts[d.Status]++
	}
	return counts
}

// Secret names one credential that must be configured by hand in the
// hosting repository's secret store. The tool never reads or writes it.
type Secret struct {
	// Name is the secret key, e.g. "RENDER_API_KEY".
	Name string `json:"name"`

	// Hint tells the user where the value comes from.
	Hint string `json:"hint"`
}

// DeploySecrets returns the secrets consumed by the Render deploy workflow,
// in the order they are listed in the manual checklist.
func DeploySecrets() []Secret {
	return []Secret{
		{Name: "RENDER_API_KEY", Hint: "Get from render.com"},
		{Name: "RENDER_SERVICE_ID", Hint: "Get after creating Render service"},
		{Name: "BACKEND_URL", Hint: "Your Render app URL (e.g., https://your-app.onrender.com)"},
	}
}

// ExitCode defines the process exit codes. Scripts and CI jobs can use
// them to tell a bad invocation from a filesystem problem.
type ExitCode int

const (
	// ExitSuccess indicates every directory was created or already existed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error (bad flags, no cwd).
	ExitGeneralError ExitCode = 1

	// ExitFilesystemError indicates a directory could not be created for a
	// reason other than already existing.
	ExitFilesystemError ExitCode = 2

	// ExitInvalidLayout indicates the --layout file was missing, unparsable,
	// or listed invalid paths.
	ExitInvalidLayout ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// FilesystemError reports a directory that could not be created or
// inspected. Pre-existing directories never produce one.
type FilesystemError struct {
	// Op is the failing operation, "mkdir" or "stat".
	Op string

	// Path is the directory set entry that failed, as listed.
	Path string

	// Err is the underlying error, usually an *fs.PathError.
	Err error
}

// Error names the offending path so the message is actionable on its own.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("cannot %s directory %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error so callers can match
// fs.ErrPermission, syscall.ENOTDIR and friends with errors.Is.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}
