package textwriter

import "github.com/arthur-debert/cigen/pkg/errors"

// Scope is one open indentation level of a Writer. Release it with defer
// right after acquiring it.
type Scope struct {
	w        *Writer
	level    int
	released bool
}

// Indent opens a scope, increasing the writer's depth by one.
func (w *Writer) Indent() *Scope {
	s := &Scope{w: w, level: len(w.open) + 1}
	w.open = append(w.open, s)
	return s
}

// Level returns the depth the scope opened.
func (s *Scope) Level() int { return s.level }

// Release closes the scope. Releasing twice, or releasing a nil scope, does
// nothing.
//
// Scopes must be released innermost first. Releasing a scope while inner
// scopes are still open closes those too, restoring the depth the scope was
// opened at, and then panics with an ErrScopeOrder error.
func (s *Scope) Release() {
	if s == nil || s.released {
		return
	}

	w := s.w
	innermost := w.open[len(w.open)-1]
	for _, inner := range w.open[s.level-1:] {
		inner.released = true
	}
	w.open = w.open[:s.level-1]

	if innermost != s {
		panic(errors.Newf(errors.ErrScopeOrder,
			"indent scope at level %d released while level %d is open", s.level, innermost.level).
			WithDetail("level", s.level).
			WithDetail("innermost", innermost.level))
	}
}
