// Package shared provides common utility functions used across multiple
// packages in the samm-registry codebase.
package shared

import "strings"

// PrefixToken trims a namespace prefix and appends the trailing colon
// when it is missing, so "bamm" and "bamm:" both become "bamm:".
func PrefixToken(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasSuffix(trimmed, ":") {
		return trimmed
	}
	return trimmed + ":"
}

// SplitCurie splits "prefix:local" at the first colon. The returned
// prefix keeps its colon. ok is false when the input has no colon.
func SplitCurie(value string) (prefix string, local string, ok bool) {
	idx := strings.Index(value, ":")
	if idx < 0 {
		return "", value, false
	}
	return value[:idx+1], value[idx+1:], true
}
