// Package catalog provides driven adapters that supply the dataset collection.
//
// Adapters:
//   - Source: loads a catalog from a local file (JSON, YAML or TOML) or an http(s) URL
//   - Sample: the catalog embedded in the binary
//   - Watcher: reloads a LiveCatalog when the catalog file changes on disk
package catalog
