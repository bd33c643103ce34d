// Package ghoutput appends step outputs to the GITHUB_OUTPUT file so CI
// workflows can branch on sweep results (minimized counts, resolved flags).
package ghoutput

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Write appends the given key=value pairs to GITHUB_OUTPUT when it is set.
// Outside of GitHub Actions this is a no-op.
func Write(values map[string]string) error {
	path := strings.TrimSpace(os.Getenv("GITHUB_OUTPUT"))
	if path == "" {
		return nil
	}
	if len(values) == 0 {
		return nil
	}

	// O_CREATE covers local runs where no runner pre-created the file.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := sanitize(values[key])
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}

// sanitize escapes newlines the way the Actions runner expects for
// single-line output values.
func sanitize(value string) string {
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "\r", "%0D")
	value = strings.ReplaceAll(value, "\n", "%0A")
	return value
}
