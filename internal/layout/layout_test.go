package layout

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinashe-code/pole-setup/internal/model"
)

// projectRoot returns the absolute path to the project root directory,
// located relative to this source file so the test does not depend on
// the directory the test runner is invoked from.
func projectRoot(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed to return file info")

	return filepath.Join(filepath.Dir(filename), "..", "..")
}

// fixture returns the path of a layout file under tests/testdata/layouts.
func fixture(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "tests", "testdata", "layouts", name)
}

func TestDefault(t *testing.T) {
	want := model.DirectorySet{
		"backend", "frontend", "docs", ".github/workflows",
		"uploads", "processed", "templates",
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}

	// Mutating the returned set must not leak into later calls.
	d := Default()
	d[0] = "mutated"
	assert.Equal(t, "backend", Default()[0])

	assert.Empty(t, Validate(Default()), "default layout must be valid")
}

// TestLoad_JSONC verifies comments and trailing commas are stripped.
func TestLoad_JSONC(t *testing.T) {
	dirs, err := Load(fixture(t, "default.jsonc"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), dirs); diff != "" {
		t.Errorf("Load(default.jsonc) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAML(t *testing.T) {
	dirs, err := Load(fixture(t, "nested.yaml"))
	require.NoError(t, err)

	want := model.DirectorySet{
		"backend", "backend/uploads", "backend/processed", "backend/templates",
		"frontend", ".github/workflows",
	}
	if diff := cmp.Diff(want, dirs); diff != "" {
		t.Errorf("Load(nested.yaml) mismatch (-want +got):\n%s", diff)
	}
}

// TestLoad_Errors checks that every failure mode maps to ExitInvalidLayout.
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contains string
	}{
		{"missing file", "does-not-exist.json", "not found"},
		{"escaping entries", "escape.json", "escapes the scaffold root"},
		{"empty set", "empty.yml", "no directories listed"},
		{"malformed yaml", "broken.yaml", "invalid YAML"},
		{"unsupported extension", "layout.toml", "unsupported layout format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fixture(t, tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr), "expected CLIError, got %T", err)
			assert.Equal(t, model.ExitInvalidLayout, cliErr.Code)
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"directories": [`), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestValidate(t *testing.T) {
	t.Run("valid set", func(t *testing.T) {
		assert.Empty(t, Validate(model.DirectorySet{"backend", "a/b/c", "./docs"}))
	})

	t.Run("empty set", func(t *testing.T) {
		errs := Validate(nil)
		require.Len(t, errs, 1)
		assert.Equal(t, -1, errs[0].Index)
	})

	t.Run("reports every bad entry", func(t *testing.T) {
		errs := Validate(model.DirectorySet{"backend", "", "/abs", "..", "a/../../b", ".", "backend/"})
		require.Len(t, errs, 6)

		indexes := make([]int, 0, len(errs))
		for _, e := range errs {
			indexes = append(indexes, e.Index)
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, indexes)
		assert.Contains(t, errs[5].Error(), "duplicates directories[0]")
	})
}

func TestClean(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"backend", "backend", false},
		{".github/workflows", ".github/workflows", false},
		{"./docs/", "docs", false},
		{"a/b/../c", "a/c", false},
		{"", "", true},
		{"   ", "", true},
		{"/etc", "", true},
		{".", "", true},
		{"..", "", true},
		{"../x", "", true},
		{"a/../../x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Clean(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSafeJoin(t *testing.T) {
	root := t.TempDir()

	got, err := SafeJoin(root, ".github/workflows")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".github", "workflows"), got)

	_, err = SafeJoin(root, "../escape")
	assert.Error(t, err)
}
