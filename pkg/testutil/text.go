package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Dedent strips the common leading indentation of s and a single leading
// newline, so expected documents can be written as indented raw strings.
// Tabs in the margin count as indentation; spaces past the margin are kept.
func Dedent(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")

	margin := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, "\t"))
		if margin < 0 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return s
	}

	for i, l := range lines {
		if len(l) >= margin {
			lines[i] = l[margin:]
		} else {
			lines[i] = strings.TrimLeft(l, "\t")
		}
	}
	return strings.Join(lines, "\n")
}

// WriteFile writes content to name under a fresh temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}
