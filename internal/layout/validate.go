// validate.go keeps every directory set entry inside the scaffold root.
//
// Layout files are user input, so an entry like "../outside" or "/etc"
// must be rejected before the scaffolder joins it with the root.
package layout

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/tinashe-code/pole-setup/internal/model"
)

// ValidationError represents a single invalid entry in a directory set.
type ValidationError struct {
	// Index is the position of the entry in the set, or -1 for problems
	// that concern the set as a whole.
	Index int

	// Path is the entry as written.
	Path string

	// Message describes what's wrong with the entry.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("layout: %s", e.Message)
	}
	return fmt.Sprintf("layout: directories[%d] %q: %s", e.Index, e.Path, e.Message)
}

// Validate checks a directory set and returns every problem found
// (empty list = valid set).
//
// Checks performed:
//   - the set lists at least one directory
//   - entries are non-empty and relative
//   - entries do not resolve to the root itself or climb out of it
//   - entries are unique after cleaning ("docs" and "docs/" collide)
func Validate(dirs model.DirectorySet) []ValidationError {
	var errors []ValidationError

	if len(dirs) == 0 {
		return append(errors, ValidationError{
			Index:   -1,
			Message: "no directories listed",
		})
	}

	seen := make(map[string]int, len(dirs))
	for i, d := range dirs {
		clean, err := Clean(d)
		if err != nil {
			errors = append(errors, ValidationError{Index: i, Path: d, Message: err.Error()})
			continue
		}
		if first, dup := seen[clean]; dup {
			errors = append(errors, ValidationError{
				Index:   i,
				Path:    d,
				Message: fmt.Sprintf("duplicates directories[%d]", first),
			})
			continue
		}
		seen[clean] = i
	}

	return errors
}

// Clean normalizes a directory set entry to slash form and rejects
// entries that are empty, absolute, the root itself, or outside the root.
func Clean(rel string) (string, error) {
	if strings.TrimSpace(rel) == "" {
		return "", fmt.Errorf("path must not be empty")
	}

	slashed := filepath.ToSlash(rel)
	if path.IsAbs(slashed) || filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", fmt.Errorf("path must be relative to the scaffold root")
	}

	clean := path.Clean(slashed)
	switch {
	case clean == ".":
		return "", fmt.Errorf("path refers to the scaffold root itself")
	case clean == ".." || strings.HasPrefix(clean, "../"):
		return "", fmt.Errorf("path escapes the scaffold root")
	}

	return clean, nil
}

// SafeJoin joins a directory set entry onto root using the platform
// separator. It returns an error instead of a path outside root.
func SafeJoin(root, rel string) (string, error) {
	clean, err := Clean(rel)
	if err != nil {
		return "", fmt.Errorf("%q: %w", rel, err)
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}
