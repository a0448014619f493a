// Package model defines the domain types and value objects for the
// pole-setup CLI.
//
// This package contains pure data structures with no external dependencies.
// The only state the tool touches is the filesystem under the chosen root,
// so every type here is a transient description of that filesystem
// (directory sets, per-directory results, reports).
//
// The package also defines exit codes (ExitCode), the CLIError type that
// carries them, and FilesystemError, the single domain error kind.
package model
