package repo

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"
)

// ErrNotGitHub is returned by ParseGitHubRemote for remotes hosted elsewhere.
var ErrNotGitHub = errors.New("remote is not hosted on github.com")

// GitHubRepo identifies a repository on github.com.
type GitHubRepo struct {
	Owner string
	Name  string
}

// SecretsURL returns the Actions secrets settings page for the repository.
func (r GitHubRepo) SecretsURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/settings/secrets/actions", r.Owner, r.Name)
}

// String returns "owner/name".
func (r GitHubRepo) String() string {
	return r.Owner + "/" + r.Name
}

// Detector runs read-only git queries.
//
// GitBinary defaults to "git" and exists so tests can point at a missing
// binary.
type Detector struct {
	GitBinary string
}

// NewDetector creates a Detector that uses git from PATH.
func NewDetector() *Detector {
	return &Detector{GitBinary: "git"}
}

// RepoRoot returns the top-level directory of the work tree containing dir.
//
// Uses `git rev-parse --show-toplevel`, which answers for linked worktrees
// as well as the main checkout.
func (d *Detector) RepoRoot(dir string) (string, error) {
	out, err := d.runGit(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// OriginURL returns the fetch URL of the "origin" remote.
func (d *Detector) OriginURL(dir string) (string, error) {
	out, err := d.runGit(dir, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// GitHubRepo resolves the GitHub repository behind dir's origin remote.
func (d *Detector) GitHubRepo(dir string) (GitHubRepo, error) {
	origin, err := d.OriginURL(dir)
	if err != nil {
		return GitHubRepo{}, err
	}
	return ParseGitHubRemote(origin)
}

// ParseGitHubRemote extracts owner and repository name from a remote URL.
//
// Accepted forms:
//
//	https://github.com/owner/name(.git)
//	ssh://git@github.com/owner/name(.git)
//	git@github.com:owner/name(.git)
func ParseGitHubRemote(remote string) (GitHubRepo, error) {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return GitHubRepo{}, fmt.Errorf("empty remote URL")
	}

	var host, repoPath string
	if strings.Contains(remote, "://") {
		u, err := url.Parse(remote)
		if err != nil {
			return GitHubRepo{}, fmt.Errorf("invalid remote URL %q: %w", remote, err)
		}
		host = u.Hostname()
		repoPath = u.Path
	} else {
		// scp-like syntax: [user@]host:path
		userHost, p, ok := strings.Cut(remote, ":")
		if !ok {
			return GitHubRepo{}, fmt.Errorf("unrecognized remote URL %q", remote)
		}
		if i := strings.LastIndex(userHost, "@"); i >= 0 {
			userHost = userHost[i+1:]
		}
		host = userHost
		repoPath = p
	}

	if !strings.EqualFold(host, "github.com") {
		return GitHubRepo{}, fmt.Errorf("%w: %s", ErrNotGitHub, remote)
	}

	repoPath = strings.Trim(repoPath, "/")
	repoPath = strings.TrimSuffix(repoPath, ".git")
	owner, name, ok := strings.Cut(repoPath, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return GitHubRepo{}, fmt.Errorf("remote URL %q does not name owner/repository", remote)
	}

	return GitHubRepo{Owner: owner, Name: name}, nil
}

// runGit executes git with -C dir so the process working directory is
// never changed. stderr is folded into the error on failure.
func (d *Detector) runGit(dir string, args ...string) (string, error) {
	bin := d.GitBinary
	if bin == "" {
		bin = "git"
	}

	fullArgs := append([]string{"-C", dir}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command(bin, fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("git %s failed: %s: %w", strings.Join(args, " "), stderrStr, err)
		}
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}

	return stdout.String(), nil
}
