package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/tinashe-code/pole-setup/internal/model"
)

// defaultDirectories is the directory set created when no layout file is
// given. The order matches the progress narration: backend, frontend,
// then the GitHub workflow folder, then the backend's working folders.
var defaultDirectories = model.DirectorySet{
	"backend",
	"frontend",
	"docs",
	".github/workflows",
	"uploads",
	"processed",
	"templates",
}

// File is the on-disk layout schema shared by the JSONC and YAML formats.
//
//	{
//	  // folders created under --root
//	  "directories": ["backend", "frontend", ".github/workflows"],
//	}
type File struct {
	// Directories lists slash-separated paths relative to the scaffold root.
	Directories []string `json:"directories" yaml:"directories"`
}

// Default returns the built-in directory set. The returned slice is a
// copy and may be modified by the caller.
func Default() model.DirectorySet {
	return defaultDirectories.Clone()
}

// Load reads a layout file and returns its validated directory set.
//
// The format is chosen by extension: .json and .jsonc go through the JSONC
// stripper, .yaml and .yml through yaml.v3. Every failure, including a
// missing file, is returned as a CLIError with ExitInvalidLayout.
func Load(path string) (model.DirectorySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitInvalidLayout,
				fmt.Sprintf("layout file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(model.ExitInvalidLayout, "failed to read layout file", err)
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidLayout,
			fmt.Sprintf("failed to parse layout file %s", path),
			err,
		)
	}

	dirs := model.DirectorySet(f.Directories)
	if problems := Validate(dirs); len(problems) > 0 {
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			msgs = append(msgs, p.Error())
		}
		return nil, model.NewCLIError(
			model.ExitInvalidLayout,
			fmt.Sprintf("invalid layout file %s:\n  %s", path, strings.Join(msgs, "\n  ")),
		)
	}

	return dirs, nil
}

// Parse decodes layout data. ext selects the format and includes the
// leading dot, as returned by filepath.Ext.
func Parse(data []byte, ext string) (*File, error) {
	var f File

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		// Comments and trailing commas are stripped first.
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported layout format %q (use .json, .jsonc, .yaml or .yml)", ext)
	}

	return &f, nil
}
