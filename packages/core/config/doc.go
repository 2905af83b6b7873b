// Package config handles configuration loading for veryhttp.
//
// It provides functionality for:
//   - Loading configuration from a YAML or JSON file given with --config
//   - Default configuration values and identifying request headers
//   - Merging a file config with command-line overrides
package config
