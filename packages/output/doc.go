// Package output renders HTTP responses for the terminal.
//
// A rendered response has three sections:
//   - Status: protocol version and status code
//   - Headers: one "Name: value" line per header value
//   - Body: indented JSON for application/json, verbatim text otherwise
//
// Colors come from fatih/color and can be disabled per renderer.
package output
