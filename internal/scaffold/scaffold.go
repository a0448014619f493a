package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/tinashe-code/pole-setup/internal/layout"
	"github.com/tinashe-code/pole-setup/internal/model"
)

// DefaultDirPerm is the mode used for created directories before umask.
const DefaultDirPerm fs.FileMode = 0o755

// Scaffolder creates directory sets under a root.
//
// The zero value is not usable; call New.
type Scaffolder struct {
	// DirPerm is passed to os.MkdirAll for every created directory.
	DirPerm fs.FileMode

	// Logf receives one trace line per directory decision. It is never nil
	// after New.
	Logf func(format string, args ...interface{})
}

// New returns a Scaffolder with default permissions. logf may be nil.
func New(logf func(format string, args ...interface{})) *Scaffolder {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Scaffolder{DirPerm: DefaultDirPerm, Logf: logf}
}

// ResolveRoot turns the --root value into an absolute path. An empty root
// means the current working directory.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		return os.Getwd()
	}
	return filepath.Abs(root)
}

// EnsureDirectories creates every path in order under root, including any
// missing parents. Paths that already exist as directories are reported
// as StatusExists.
//
// The run stops at the first failure. The returned slice holds the results
// for the paths handled before it, and the error is a *model.FilesystemError
// naming the failing entry.
func (s *Scaffolder) EnsureDirectories(root string, paths model.DirectorySet) ([]model.DirResult, error) {
	absRoot, err := ResolveRoot(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scaffold root: %w", err)
	}

	results := make([]model.DirResult, 0, len(paths))
	for _, rel := range paths {
		target, err := layout.SafeJoin(absRoot, rel)
		if err != nil {
			return results, &model.FilesystemError{Op: "mkdir", Path: rel, Err: err}
		}

		status, op, err := s.ensureDir(target)
		if err != nil {
			s.Logf("failed: %s (%v)", target, err)
			return results, &model.FilesystemError{Op: op, Path: rel, Err: err}
		}
		s.Logf("%s: %s", status, target)

		results = append(results, model.DirResult{Path: rel, AbsPath: target, Status: status})
	}

	return results, nil
}

// Plan reports what EnsureDirectories would do without touching the
// filesystem. Missing directories are reported as StatusPlanned. A path
// occupied by a non-directory fails exactly as the real run would.
func (s *Scaffolder) Plan(root string, paths model.DirectorySet) ([]model.DirResult, error) {
	absRoot, err := ResolveRoot(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scaffold root: %w", err)
	}

	results := make([]model.DirResult, 0, len(paths))
	for _, rel := range paths {
		target, err := layout.SafeJoin(absRoot, rel)
		if err != nil {
			return results, &model.FilesystemError{Op: "mkdir", Path: rel, Err: err}
		}

		status, err := inspect(target)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			status = model.StatusPlanned
		case err != nil:
			s.Logf("would fail: %s (%v)", target, err)
			return results, &model.FilesystemError{Op: "stat", Path: rel, Err: err}
		}
		s.Logf("%s: %s", status, target)

		results = append(results, model.DirResult{Path: rel, AbsPath: target, Status: status})
	}

	return results, nil
}

// ensureDir makes sure target is a directory and returns what happened.
// op names the failing operation for error reporting.
func (s *Scaffolder) ensureDir(target string) (model.DirStatus, string, error) {
	status, err := inspect(target)
	switch {
	case err == nil:
		return status, "", nil
	case errors.Is(err, syscall.ENOTDIR):
		return "", "mkdir", err
	case !errors.Is(err, fs.ErrNotExist):
		return "", "stat", err
	}

	if err := os.MkdirAll(target, s.DirPerm); err != nil {
		return "", "mkdir", err
	}
	return model.StatusCreated, "", nil
}

// inspect follows symlinks, so a link to a directory counts as existing.
// A non-directory at target is reported as ENOTDIR wrapped in a PathError,
// the same error os.MkdirAll produces for a file in the way.
func inspect(target string) (model.DirStatus, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &fs.PathError{Op: "mkdir", Path: target, Err: syscall.ENOTDIR}
	}
	return model.StatusExists, nil
}
