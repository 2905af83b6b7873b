// Package cmd implements the veryhttp CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request and print the response
//   - post: Send a POST request with a JSON body built from key=value pairs
//   - version: Show veryhttp version information
//   - completion: Generate shell completion scripts
//
// Every failure maps to a distinct exit code (see exitcodes.go) so the
// CLI can be used from scripts.
package cmd
