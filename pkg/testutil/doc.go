// Package testutil provides utilities for testing cigen components.
//
// Key components:
//   - FailingWriter: io.Writer sink that fails after a number of writes
//   - Dedent: inline expected documents without fighting Go indentation
//   - WriteFile: fixture files under t.TempDir
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
