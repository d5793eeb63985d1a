package arguments

import (
	"slices"
	"sort"
	"strings"
)

// SecretSet is an insertion-ordered set of raw secret values.
//
// Besides the raw value, every form the value can take in a rendering is
// kept for redaction: DoubleQuote escapes embedded quotes, once for a quoted
// element and again when QuoteMultiple quotes the joined collection.
type SecretSet struct {
	values []string
	forms  []string
	seen   map[string]struct{}
}

// Add records value as a secret. Blank values and duplicates are ignored.
func (s *SecretSet) Add(value string) {
	if isBlank(value) {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.values = append(s.values, value)

	form := value
	for i := 0; i < 3; i++ {
		if !slices.Contains(s.forms, form) {
			s.forms = append(s.forms, form)
		}
		if !strings.Contains(form, `"`) {
			break
		}
		form = strings.ReplaceAll(form, `"`, `\"`)
	}
}

// Contains reports whether value was recorded as a secret.
func (s *SecretSet) Contains(value string) bool {
	_, ok := s.seen[value]
	return ok
}

// Len returns the number of distinct secrets.
func (s *SecretSet) Len() int {
	return len(s.values)
}

// Values returns a copy of the secrets in insertion order.
func (s *SecretSet) Values() []string {
	return append([]string(nil), s.values...)
}

// Redact replaces every secret occurring in text with marker, in raw or
// quote-escaped form. Matching runs left to right without overlap and, at a
// given position, the longest secret wins: with secrets "pass" and
// "password", "password1" becomes marker+"1".
func (s *SecretSet) Redact(text, marker string) string {
	if len(s.forms) == 0 || text == "" {
		return text
	}

	ordered := append([]string(nil), s.forms...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	oldnew := make([]string, 0, 2*len(ordered))
	for _, v := range ordered {
		oldnew = append(oldnew, v, marker)
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}
