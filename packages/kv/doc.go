// Package kv parses key=value tokens into request body fields.
//
// Tokens are split on the first '=' only, so values may themselves
// contain '='. Folding a sequence of pairs into a body map keeps the
// last value seen for each key.
package kv
