package arguments

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
)

// DefaultRedactionMarker replaces secrets in output renderings.
const DefaultRedactionMarker = "[REDACTED]"

// Fragment is one template plus the values accumulated for it.
type Fragment struct {
	Template string
	Values   []string
}

// Builder accumulates command-line fragments and the secrets among them.
// A Builder is not safe for concurrent mutation.
type Builder struct {
	fragments []*Fragment
	index     map[string]int
	secrets   SecretSet
	marker    string
}

// New returns an empty Builder.
func New(opts ...BuilderOption) *Builder {
	b := &Builder{
		index:  make(map[string]int),
		marker: DefaultRedactionMarker,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends value to the fragment for template. Blank values are skipped.
func (b *Builder) Add(template, value string, opts ...Option) *Builder {
	if isBlank(value) {
		return b
	}
	o := collectOptions(opts)
	b.addInternal(template, DoubleQuoteIfNeeded(value, o.disallowed...))
	if o.secret {
		b.secrets.Add(value)
	}
	return b
}

// AddFormat renders value with fmt.Sprint and adds it like Add. A nil value
// is skipped.
func (b *Builder) AddFormat(template string, value any, opts ...Option) *Builder {
	if value == nil {
		return b
	}
	return b.Add(template, fmt.Sprint(value), opts...)
}

// AddFlag appends template verbatim when enabled.
func (b *Builder) AddFlag(template string, enabled bool) *Builder {
	if enabled {
		b.addInternal(template, "")
	}
	return b
}

// AddList quotes each element and adds them under template, either joined by
// the Separator option or as one value per element. Nil or empty slices are
// skipped.
func (b *Builder) AddList(template string, values []string, opts ...Option) *Builder {
	if len(values) == 0 {
		return b
	}
	o := collectOptions(opts)
	f := newFormatter(o)
	b.addInternal(template, f.collect(f.quoteAll(values))...)
	if o.secret {
		for _, v := range values {
			b.secrets.Add(v)
		}
	}
	return b
}

// AddPairs renders each pair through itemTemplate, e.g. "{key}={value}", and
// adds the results like AddList. Pairs with a blank value are skipped.
// itemTemplate must leave exactly one character once both placeholders are
// removed, otherwise an ErrInvalidTemplate error is returned and the builder
// is left untouched.
func (b *Builder) AddPairs(template string, pairs []Pair, itemTemplate string, opts ...Option) error {
	it, err := parseItemTemplate(itemTemplate)
	if err != nil {
		return err
	}

	o := collectOptions(opts)
	f := newFormatter(o, it.separator)

	items := make([]string, 0, len(pairs))
	var raw []string
	for _, p := range pairs {
		if isBlank(p.Value) {
			continue
		}
		items = append(items, it.render(f.quote(p.Key), f.quote(p.Value)))
		raw = append(raw, p.Value)
	}
	if len(items) == 0 {
		return nil
	}

	b.addInternal(template, f.collect(items)...)
	if o.secret {
		for _, v := range raw {
			b.secrets.Add(v)
		}
	}
	return nil
}

// AddMap is AddPairs over m, ordered by key.
func (b *Builder) AddMap(template string, m map[string]string, itemTemplate string, opts ...Option) error {
	return b.AddPairs(template, PairsFromMap(m), itemTemplate, opts...)
}

// AddGroups adds one value per distinct key: the key's values are quoted,
// joined by the Separator option (',' by default) and rendered through
// itemTemplate. Each key stays a separate value of the fragment.
func (b *Builder) AddGroups(template string, groups []Group, itemTemplate string, opts ...Option) error {
	it, err := parseItemTemplate(itemTemplate)
	if err != nil {
		return err
	}

	o := collectOptions(opts)
	if !o.hasSeparator {
		o.separator = defaultGroupSeparator
		o.hasSeparator = true
	}
	f := newFormatter(o, it.separator)

	for _, g := range mergeGroups(groups) {
		var values []string
		for _, v := range g.Values {
			if !isBlank(v) {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}

		item := it.render(f.quote(g.Key), strings.Join(f.quoteAll(values), string(f.separator)))
		if f.quoteMultiple {
			item = DoubleQuote(item)
		}
		b.addInternal(template, item)

		if o.secret {
			for _, v := range values {
				b.secrets.Add(v)
			}
		}
	}
	return nil
}

// Concatenate appends the fragments and secrets of other after those of b.
// Fragments of other are kept apart from same-template fragments of b, so
// the rendering of b is a prefix of the concatenated rendering.
func (b *Builder) Concatenate(other *Builder) *Builder {
	if other == nil {
		return b
	}
	fragments := other.Fragments()
	secrets := other.secrets.Values()

	for _, f := range fragments {
		key := foldTemplate(f.Template)
		if _, ok := b.index[key]; !ok {
			b.index[key] = len(b.fragments)
		}
		b.fragments = append(b.fragments, &Fragment{Template: f.Template, Values: f.Values})
	}
	for _, s := range secrets {
		b.secrets.Add(s)
	}
	return b
}

// RenderForExecution renders every value into its template, in order,
// separated by single spaces. Secrets appear in plaintext.
func (b *Builder) RenderForExecution() string {
	return b.render()
}

// RenderForOutput is RenderForExecution with every secret replaced by the
// redaction marker.
func (b *Builder) RenderForOutput() string {
	return b.FilterSecrets(b.render())
}

// FilterSecrets redacts the builder's secrets from arbitrary text, such as
// captured process output.
func (b *Builder) FilterSecrets(text string) string {
	return b.secrets.Redact(text, b.marker)
}

// Secrets returns the recorded secrets in insertion order.
func (b *Builder) Secrets() []string {
	return b.secrets.Values()
}

// Fragments returns a copy of the accumulated fragments.
func (b *Builder) Fragments() []Fragment {
	out := make([]Fragment, len(b.fragments))
	for i, f := range b.fragments {
		out[i] = Fragment{Template: f.Template, Values: append([]string(nil), f.Values...)}
	}
	return out
}

// Empty reports whether nothing has been added.
func (b *Builder) Empty() bool {
	return len(b.fragments) == 0
}

// String returns the redacted rendering so builders are safe to print.
func (b *Builder) String() string {
	return b.RenderForOutput()
}

// MarshalZerologObject logs the redacted rendering.
func (b *Builder) MarshalZerologObject(e *zerolog.Event) {
	e.Str("args", b.RenderForOutput()).
		Int("fragments", len(b.fragments)).
		Int("secrets", b.secrets.Len())
}

func (b *Builder) addInternal(template string, values ...string) {
	key := foldTemplate(template)
	if i, ok := b.index[key]; ok {
		b.fragments[i].Values = append(b.fragments[i].Values, values...)
		return
	}
	b.index[key] = len(b.fragments)
	b.fragments = append(b.fragments, &Fragment{
		Template: template,
		Values:   append([]string(nil), values...),
	})
}

func (b *Builder) render() string {
	var sb strings.Builder
	for _, f := range b.fragments {
		for _, v := range f.Values {
			piece := substitute(f.Template, v)
			if piece == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(piece)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// substitute places value into template. Templates without a placeholder are
// emitted as-is.
func substitute(template, value string) string {
	if !strings.Contains(template, ValuePlaceholder) {
		return template
	}
	return strings.ReplaceAll(template, ValuePlaceholder, value)
}

func foldTemplate(template string) string {
	return cases.Fold().String(template)
}
