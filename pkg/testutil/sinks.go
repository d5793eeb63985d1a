package testutil

import (
	"bytes"
	"errors"
)

// ErrSinkFailed is returned by FailingWriter once it starts failing
var ErrSinkFailed = errors.New("testutil: sink failed")

// FailingWriter records writes until FailAfter successful writes have been
// made, then returns Err (ErrSinkFailed when nil) for every later write.
type FailingWriter struct {
	FailAfter int
	Err       error

	buf    bytes.Buffer
	writes int
}

// Write implements io.Writer
func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.FailAfter {
		if w.Err != nil {
			return 0, w.Err
		}
		return 0, ErrSinkFailed
	}
	w.writes++
	return w.buf.Write(p)
}

// String returns everything written before the failure
func (w *FailingWriter) String() string {
	return w.buf.String()
}
