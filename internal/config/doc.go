// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading manifests from
// various sources.
//
// The `config.Model` is the single source of truth for the graph built by the
// `app` package. YAML and JSON-with-comments loaders live here; the HCL loader
// is provided in the separate `hcl` package.
package config
