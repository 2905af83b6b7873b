// Package command holds the parsed form of a veryhttp invocation.
//
// A Command is either Get or Post. Parsing validates the URL and the
// key=value body tokens without touching the network.
package command
