// Package layout decides which directories the scaffolder creates.
//
// The default layout mirrors the repository shape the pole extractor
// deploys from: a FastAPI backend, a static frontend, docs, the GitHub
// Actions workflow folder and the backend's working folders (uploads,
// processed, templates).
//
// A layout file can replace the default set. JSONC files are parsed with
// github.com/tidwall/jsonc so comments and trailing commas are allowed;
// YAML files are parsed with gopkg.in/yaml.v3. Every entry is validated
// to stay inside the scaffold root before anything touches the disk.
package layout
