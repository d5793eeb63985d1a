// Package arguments assembles command-line argument strings for tool
// invocations.
//
// A Builder collects fragments: a template such as "--configuration {value}"
// plus the values added for it. Adding a value to a template already seen
// (compared case-insensitively) appends to the existing fragment, so
//
//	b := arguments.New().
//		Add("-p {value}", "a").
//		Add("-p {value}", "b")
//
// renders "-p a -p b". Blank values, empty slices and empty maps are skipped
// silently, which lets callers pass optional settings straight through.
//
// Values containing whitespace, or any character passed through Disallowed
// or Separator, are wrapped in double quotes; embedded quotes are escaped
// as \".
//
// Values added with the Secret option are tracked separately.
// RenderForExecution returns them in plaintext for the process invocation,
// RenderForOutput and FilterSecrets replace them with a redaction marker for
// logs.
package arguments
