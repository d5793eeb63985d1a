// Package yamlgen re-emits YAML documents through a textwriter.Writer.
//
// Output is always block style with the writer's indent factor. With the
// default factor of 2 the first key of a mapping in a sequence shares the
// dash line, matching hand-written CI pipelines. Multi-line strings become
// literal blocks and plain strings that would not read back unchanged are
// double-quoted. Head comments survive; line and foot comments are dropped.
package yamlgen
