// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Opening URLs in the default browser
//   - Reading piped standard input
//   - "Did you mean" suggestions for mistyped names
//   - Common data structure operations
package utils
