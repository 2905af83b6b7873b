// Package http provides the HTTP client used by veryhttp.
//
// It wraps the standard library's http package with:
//   - Default headers attached to every request
//   - Optional timeout and proxy settings
//   - Redirect handling
//   - JSON request bodies
//   - Fully buffered responses with content-type helpers
package http
