// Package config provides configuration loading and path resolution for the
// catalog analysis tool.
//
// Configuration is layered: built-in defaults, an optional config.yaml, and
// CATALOG_* environment variables processed with envconfig. The resulting
// struct is checked with go-playground/validator struct tags, so an invalid
// log level or a non-positive top-N limit fails at startup rather than
// mid-pipeline.
//
// The Paths type is the single source of truth for file locations. All
// output directories are resolved relative to the executable, never the
// working directory.
package config
