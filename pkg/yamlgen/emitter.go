package yamlgen

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/cigen/pkg/errors"
	"github.com/arthur-debert/cigen/pkg/textwriter"
	"gopkg.in/yaml.v3"
)

// Options tunes Emit
type Options struct {
	// Header lines are written as comments before the document
	Header []string
}

// Emit writes the document rooted at n in block style. Head comments on
// mapping keys and sequence items are kept; flow collections are expanded.
// Sink failures are wrapped with ErrSinkWrite.
func Emit(w *textwriter.Writer, n *yaml.Node, opts Options) error {
	if w.Factor() < 1 {
		return errors.New(errors.ErrInvalidInput, "YAML output needs an indent factor of at least 1")
	}
	e := &emitter{w: w, compact: w.Factor() == 2}

	for _, h := range opts.Header {
		if err := w.WriteComment(h); err != nil {
			return sinkError(err)
		}
	}

	if n.Kind == yaml.DocumentNode {
		if err := e.comments(n.HeadComment); err != nil {
			return err
		}
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	return e.root(n)
}

// EmitValue encodes v with yaml.v3 and emits the resulting node
func EmitValue(w *textwriter.Writer, v interface{}, opts Options) error {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrSpecInvalid, "failed to encode value")
	}
	return Emit(w, &n, opts)
}

type emitter struct {
	w *textwriter.Writer
	// compact puts the first key of a mapping inside a sequence on the dash
	// line. Only valid when "- " is exactly one indentation level wide.
	compact bool
}

func (e *emitter) line(text string) error {
	return sinkError(e.w.WriteLine(text))
}

func sinkError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.ErrSinkWrite, "failed to write document")
}

func (e *emitter) root(n *yaml.Node) error {
	switch {
	case n.Kind == yaml.MappingNode && len(n.Content) > 0:
		return e.mapping(n)
	case n.Kind == yaml.SequenceNode && len(n.Content) > 0:
		return e.sequence(n)
	case isLiteral(n):
		return e.block("", n, 1)
	}
	text, err := inline(n)
	if err != nil {
		return err
	}
	return e.line(text)
}

func (e *emitter) comments(text string) error {
	if text == "" {
		return nil
	}
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "#"))
		if err := e.w.WriteComment(l); err != nil {
			return sinkError(err)
		}
	}
	return nil
}

func (e *emitter) mapping(n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := e.comments(n.Content[i].HeadComment); err != nil {
			return err
		}
		if err := e.pair(n.Content[i], n.Content[i+1], "", 1); err != nil {
			return err
		}
	}
	return nil
}

// pair writes "prefix key: value". Nested content goes levels deeper than the
// current depth.
func (e *emitter) pair(k, v *yaml.Node, prefix string, levels int) error {
	if k.Kind != yaml.ScalarNode {
		return errors.New(errors.ErrSpecInvalid, "only scalar mapping keys are supported").
			WithDetail("line", k.Line)
	}
	key, err := scalar(k)
	if err != nil {
		return err
	}
	header := prefix + key + ":"

	if !isBlock(v) {
		text, err := inline(v)
		if err != nil {
			return err
		}
		if text == "" {
			return e.line(header)
		}
		return e.line(header + " " + text)
	}
	return e.nested(header, v, levels)
}

func (e *emitter) nested(header string, v *yaml.Node, levels int) error {
	if isLiteral(v) {
		return e.block(header, v, levels)
	}
	if v.Anchor != "" {
		header += " &" + v.Anchor
	}
	if err := e.line(header); err != nil {
		return err
	}

	for i := 0; i < levels; i++ {
		scope := e.w.Indent()
		defer scope.Release()
	}
	if v.Kind == yaml.MappingNode {
		return e.mapping(v)
	}
	return e.sequence(v)
}

func (e *emitter) sequence(n *yaml.Node) error {
	for _, item := range n.Content {
		if err := e.comments(item.HeadComment); err != nil {
			return err
		}
		if err := e.item(item); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) item(n *yaml.Node) error {
	if !isBlock(n) {
		text, err := inline(n)
		if err != nil {
			return err
		}
		if text == "" {
			return e.line("-")
		}
		return e.line("- " + text)
	}

	if e.compact && n.Kind == yaml.MappingNode && n.Anchor == "" {
		// First pair on the dash line, its children two levels down; the
		// remaining pairs align with the first key.
		if err := e.pair(n.Content[0], n.Content[1], "- ", 2); err != nil {
			return err
		}
		scope := e.w.Indent()
		defer scope.Release()
		for i := 2; i+1 < len(n.Content); i += 2 {
			if err := e.comments(n.Content[i].HeadComment); err != nil {
				return err
			}
			if err := e.pair(n.Content[i], n.Content[i+1], "", 1); err != nil {
				return err
			}
		}
		return nil
	}
	return e.nested("-", n, 1)
}

// block writes a literal scalar as "header |" followed by its lines, levels
// deeper than the header.
func (e *emitter) block(header string, n *yaml.Node, levels int) error {
	indicator := "|"
	switch {
	case strings.HasSuffix(n.Value, "\n\n"):
		indicator = "|+"
	case !strings.HasSuffix(n.Value, "\n"):
		indicator = "|-"
	}
	indicator = withAnchor(n, indicator)
	if header != "" {
		indicator = header + " " + indicator
	}
	if err := e.line(indicator); err != nil {
		return err
	}

	for i := 0; i < levels; i++ {
		scope := e.w.Indent()
		defer scope.Release()
	}
	body := strings.TrimSuffix(n.Value, "\n")
	for _, l := range strings.Split(body, "\n") {
		if err := e.line(l); err != nil {
			return err
		}
	}
	return nil
}

func isBlock(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return len(n.Content) > 0
	}
	return isLiteral(n)
}

// isLiteral reports scalars that must be written as literal blocks. Values
// whose first line starts with a space would need an indentation indicator
// and are double-quoted instead.
func isLiteral(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode || !strings.Contains(n.Value, "\n") || n.ShortTag() != "!!str" {
		return false
	}
	if strings.HasPrefix(n.Value, " ") || strings.HasPrefix(n.Value, "\n") {
		return false
	}
	return n.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 || n.Style == 0
}

func inline(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return withAnchor(n, "{}"), nil
	case yaml.SequenceNode:
		return withAnchor(n, "[]"), nil
	case yaml.AliasNode:
		return "*" + n.Value, nil
	case yaml.ScalarNode:
		s, err := scalar(n)
		if err != nil {
			return "", err
		}
		return withAnchor(n, s), nil
	}
	return "", errors.Newf(errors.ErrSpecInvalid, "unsupported node kind %d", n.Kind).
		WithDetail("line", n.Line)
}

func withAnchor(n *yaml.Node, text string) string {
	if n.Anchor == "" {
		return text
	}
	if text == "" {
		return "&" + n.Anchor
	}
	return "&" + n.Anchor + " " + text
}

// scalar renders a scalar on one line, keeping its quoting style.
func scalar(n *yaml.Node) (string, error) {
	v := n.Value
	if n.ShortTag() == "!!null" && n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) == 0 {
		return v, nil
	}

	var text string
	switch {
	case n.Style&yaml.SingleQuotedStyle != 0 && !strings.Contains(v, "\n"):
		text = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case n.Style&yaml.DoubleQuotedStyle != 0 || strings.Contains(v, "\n") || needsQuotes(n):
		text = strconv.Quote(v)
	default:
		text = v
	}

	if n.Style&yaml.TaggedStyle != 0 {
		text = n.Tag + " " + text
	}
	return text, nil
}

// needsQuotes catches plain-style strings built in Go, for example by
// EmitValue, whose text would not read back as the same string.
func needsQuotes(n *yaml.Node) bool {
	if n.ShortTag() != "!!str" || n.Style != 0 {
		return false
	}
	var back map[string]interface{}
	if err := yaml.Unmarshal([]byte("v: "+n.Value), &back); err != nil {
		return true
	}
	s, ok := back["v"].(string)
	return !ok || s != n.Value
}
