package textwriter

import (
	"io"
	"strings"
)

const (
	// DefaultFactor is the number of spaces per indentation level.
	DefaultFactor = 2
	// DefaultCommentPrefix starts comment lines, as in YAML.
	DefaultCommentPrefix = "#"
)

// Writer emits lines to a sink, each prefixed by Factor x Depth spaces.
// A Writer must not be used from multiple goroutines.
type Writer struct {
	out           io.Writer
	factor        int
	commentPrefix string
	open          []*Scope
}

// Option configures a Writer.
type Option func(*Writer)

// WithFactor sets the spaces per indentation level. Negative values are
// treated as zero.
func WithFactor(n int) Option {
	return func(w *Writer) {
		if n < 0 {
			n = 0
		}
		w.factor = n
	}
}

// WithCommentPrefix sets the prefix used by WriteComment.
func WithCommentPrefix(prefix string) Option {
	return func(w *Writer) { w.commentPrefix = prefix }
}

// New returns a Writer at depth zero around out.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:           out,
		factor:        DefaultFactor,
		commentPrefix: DefaultCommentPrefix,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Depth returns the number of open indent scopes.
func (w *Writer) Depth() int { return len(w.open) }

// Factor returns the spaces per indentation level.
func (w *Writer) Factor() int { return w.factor }

// CommentPrefix returns the prefix used for comment lines.
func (w *Writer) CommentPrefix() string { return w.commentPrefix }

// WriteLine writes text at the current indentation followed by a newline.
// Empty text produces a bare newline. Sink errors are returned as-is.
func (w *Writer) WriteLine(text string) error {
	var line string
	if text == "" {
		line = "\n"
	} else {
		line = strings.Repeat(" ", w.factor*len(w.open)) + text + "\n"
	}
	_, err := io.WriteString(w.out, line)
	return err
}

// WriteLines writes each line at the current indentation, stopping at the
// first error.
func (w *Writer) WriteLines(lines ...string) error {
	for _, l := range lines {
		if err := w.WriteLine(l); err != nil {
			return err
		}
	}
	return nil
}

// WriteComment writes text as a comment line at the current indentation.
func (w *Writer) WriteComment(text string) error {
	if text == "" {
		return w.WriteLine(w.commentPrefix)
	}
	return w.WriteLine(w.commentPrefix + " " + text)
}

// WriteBlock writes header and opens a scope for the block body:
//
//	scope, err := w.WriteBlock("steps:")
//	if err != nil {
//		return err
//	}
//	defer scope.Release()
//
// When the header cannot be written no scope is opened and the returned
// scope is nil.
func (w *Writer) WriteBlock(header string) (*Scope, error) {
	if err := w.WriteLine(header); err != nil {
		return nil, err
	}
	return w.Indent(), nil
}

// Block writes header and runs body one level deeper. The level is restored
// however body exits, including by panic.
func (w *Writer) Block(header string, body func() error) error {
	scope, err := w.WriteBlock(header)
	if err != nil {
		return err
	}
	defer scope.Release()
	return body()
}
