// Package repo inspects the Git repository that contains the scaffold root.
//
// The deploy workflow reads its secrets from the GitHub repository the
// project is pushed to. When the root sits inside a clone whose origin is
// on GitHub, the CLI can point straight at that repository's Actions
// secrets page instead of the generic "Settings → Secrets" directions.
//
// Detection shells out to the git CLI and is strictly read-only. Every
// failure is reported to the caller, which treats it as "no repository"
// rather than aborting the scaffold run.
package repo
