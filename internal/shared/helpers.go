// Package shared provides common utility functions used across multiple
// packages in the dependency-check codebase.
package shared

import (
	"fmt"
	"strings"
)

// TrimMarker normalizes fetched marker-file content: markers are single
// revision strings, usually with a trailing newline that must not defeat
// an exact comparison.
func TrimMarker(data []byte) string {
	return strings.TrimSpace(string(data))
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
