// Package textwriter writes indentation-structured text such as YAML
// documents.
//
// Nesting mirrors the Go call structure: every WriteBlock or Indent returns a
// Scope that the caller releases with defer, so the depth is restored on
// every exit path.
//
//	w := textwriter.New(out)
//	_ = w.Block("jobs:", func() error {
//		return w.Block("build:", func() error {
//			return w.WriteLine("runs-on: ubuntu-latest")
//		})
//	})
package textwriter
