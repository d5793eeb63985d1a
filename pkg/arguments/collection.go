package arguments

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/cigen/pkg/errors"
)

const (
	// ValuePlaceholder is substituted with the rendered value of a fragment
	// or with the value of a key/value item.
	ValuePlaceholder = "{value}"
	// KeyPlaceholder is substituted with the key of a key/value item.
	KeyPlaceholder = "{key}"

	defaultGroupSeparator = ','
)

// Pair is one key/value entry of an ordered dictionary.
type Pair struct {
	Key   string
	Value string
}

// Group holds every value recorded for one key of a lookup.
type Group struct {
	Key    string
	Values []string
}

// PairsFromMap returns the entries of m sorted by key.
func PairsFromMap(m map[string]string) []Pair {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return pairs
}

// itemTemplate is a validated "{key}<sep>{value}" template.
type itemTemplate struct {
	raw       string
	separator rune
}

// ParseItemTemplate checks that template holds both placeholders and that
// exactly one character remains once they are removed.
func ParseItemTemplate(template string) error {
	_, err := parseItemTemplate(template)
	return err
}

func parseItemTemplate(template string) (itemTemplate, error) {
	if !strings.Contains(template, KeyPlaceholder) || !strings.Contains(template, ValuePlaceholder) {
		return itemTemplate{}, errors.Newf(errors.ErrInvalidTemplate,
			"item template %q must contain %s and %s", template, KeyPlaceholder, ValuePlaceholder).
			WithDetail("template", template)
	}

	stripped := strings.ReplaceAll(template, KeyPlaceholder, "")
	stripped = strings.ReplaceAll(stripped, ValuePlaceholder, "")
	if n := utf8.RuneCountInString(stripped); n != 1 {
		return itemTemplate{}, errors.Newf(errors.ErrInvalidTemplate,
			"item template %q must leave exactly one separator character, got %d", template, n).
			WithDetail("template", template).
			WithDetail("separator", stripped)
	}

	r, _ := utf8.DecodeRuneInString(stripped)
	return itemTemplate{raw: template, separator: r}, nil
}

func (t itemTemplate) render(key, value string) string {
	return strings.NewReplacer(KeyPlaceholder, key, ValuePlaceholder, value).Replace(t.raw)
}

// formatter quotes collection elements and joins them per the call options.
type formatter struct {
	special       []rune
	separator     rune
	hasSeparator  bool
	quoteMultiple bool
}

func newFormatter(o addOptions, extra ...rune) formatter {
	special := append([]rune{}, o.disallowed...)
	if o.hasSeparator {
		special = append(special, o.separator)
	}
	special = append(special, extra...)
	return formatter{
		special:       special,
		separator:     o.separator,
		hasSeparator:  o.hasSeparator,
		quoteMultiple: o.quoteMultiple,
	}
}

func (f formatter) quote(value string) string {
	return DoubleQuoteIfNeeded(value, f.special...)
}

func (f formatter) quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = f.quote(v)
	}
	return quoted
}

// collect turns formatted items into fragment values: one joined value when
// a separator is set, otherwise one value per item.
func (f formatter) collect(items []string) []string {
	if !f.hasSeparator {
		return items
	}
	joined := strings.Join(items, string(f.separator))
	if f.quoteMultiple {
		joined = DoubleQuote(joined)
	}
	return []string{joined}
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// mergeGroups folds duplicate keys together, keeping first-seen key order.
func mergeGroups(groups []Group) []Group {
	index := make(map[string]int, len(groups))
	merged := make([]Group, 0, len(groups))
	for _, g := range groups {
		if i, ok := index[g.Key]; ok {
			merged[i].Values = append(merged[i].Values, g.Values...)
			continue
		}
		index[g.Key] = len(merged)
		merged = append(merged, Group{Key: g.Key, Values: append([]string{}, g.Values...)})
	}
	return merged
}
