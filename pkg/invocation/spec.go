package invocation

import (
	stderrors "errors"
	"os"
	"unicode/utf8"

	"github.com/arthur-debert/cigen/pkg/arguments"
	"github.com/arthur-debert/cigen/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Spec describes one tool invocation
type Spec struct {
	Tool      string     `yaml:"tool"`
	Arguments []Argument `yaml:"arguments"`
}

// Argument is one entry of a Spec. Exactly one of Flag, Value, Values, Pairs
// or Groups must be set.
type Argument struct {
	Template string `yaml:"template"`

	Flag    string `yaml:"flag"`
	Enabled *bool  `yaml:"enabled"`

	Value  *string   `yaml:"value"`
	Values []string  `yaml:"values"`
	Pairs  yaml.Node `yaml:"pairs"`
	Groups yaml.Node `yaml:"groups"`

	Item          string `yaml:"item"`
	Separator     string `yaml:"separator"`
	Disallowed    string `yaml:"disallowed"`
	Secret        bool   `yaml:"secret"`
	QuoteMultiple bool   `yaml:"quote_multiple"`
}

// Parse decodes a YAML invocation spec and checks its shape
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, errors.ErrSpecParse, "failed to parse invocation spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadFile reads and parses the invocation file at path
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "cannot read invocation spec %s", path).
			WithDetail("path", path)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid invocation spec %s", path).
			WithDetail("path", path)
	}
	return spec, nil
}

// Validate checks that every argument has one source of values
func (s *Spec) Validate() error {
	if s.Tool == "" {
		return errors.New(errors.ErrSpecInvalid, "tool must be set")
	}
	for i, a := range s.Arguments {
		if err := a.validate(); err != nil {
			return err.WithDetail("index", i)
		}
	}
	return nil
}

func (a *Argument) kinds() int {
	n := 0
	if a.Flag != "" {
		n++
	}
	if a.Value != nil {
		n++
	}
	if a.Values != nil {
		n++
	}
	if a.Pairs.Kind != 0 {
		n++
	}
	if a.Groups.Kind != 0 {
		n++
	}
	return n
}

func (a *Argument) validate() *errors.CigenError {
	if a.kinds() != 1 {
		return errors.New(errors.ErrSpecInvalid,
			"argument needs exactly one of flag, value, values, pairs or groups")
	}
	if a.Flag == "" && a.Template == "" {
		return errors.New(errors.ErrSpecInvalid, "argument template must be set")
	}
	if a.Separator != "" && utf8.RuneCountInString(a.Separator) != 1 {
		return errors.Newf(errors.ErrSpecInvalid, "separator %q must be a single character", a.Separator).
			WithDetail("template", a.Template)
	}
	if a.Pairs.Kind != 0 && a.Pairs.Kind != yaml.MappingNode {
		return errors.New(errors.ErrSpecInvalid, "pairs must be a mapping").
			WithDetail("template", a.Template)
	}
	if a.Groups.Kind != 0 && a.Groups.Kind != yaml.MappingNode {
		return errors.New(errors.ErrSpecInvalid, "groups must be a mapping").
			WithDetail("template", a.Template)
	}
	if (a.Pairs.Kind != 0 || a.Groups.Kind != 0) && a.Item == "" {
		return errors.New(errors.ErrSpecInvalid, "item template must be set for pairs and groups").
			WithDetail("template", a.Template)
	}
	if a.Item != "" {
		if err := arguments.ParseItemTemplate(a.Item); err != nil {
			var cigenErr *errors.CigenError
			if stderrors.As(err, &cigenErr) {
				return cigenErr
			}
			return errors.Wrap(err, errors.ErrInvalidTemplate, "invalid item template")
		}
	}
	return nil
}
