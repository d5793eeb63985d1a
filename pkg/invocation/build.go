package invocation

import (
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/cigen/pkg/arguments"
	"github.com/arthur-debert/cigen/pkg/errors"
	"github.com/arthur-debert/cigen/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Invocation is a tool plus its assembled arguments
type Invocation struct {
	Tool string
	Args *arguments.Builder
}

// ForExecution returns the full command line with secrets in plaintext
func (inv *Invocation) ForExecution() string {
	return join(inv.Tool, inv.Args.RenderForExecution())
}

// ForOutput returns the full command line with secrets redacted
func (inv *Invocation) ForOutput() string {
	return join(inv.Tool, inv.Args.RenderForOutput())
}

func join(tool, args string) string {
	if args == "" {
		return tool
	}
	return tool + " " + args
}

// BuildOptions tunes Build
type BuildOptions struct {
	// Builder options, e.g. the redaction marker from config
	Builder []arguments.BuilderOption
	// Lookup resolves ${NAME} references in values; os.Getenv when nil
	Lookup func(string) string
}

// Build assembles the invocation described by s
func (s *Spec) Build(opts BuildOptions) (*Invocation, error) {
	logger := logging.GetLogger("invocation")

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.Getenv
	}
	expand := func(v string) string { return expandRefs(v, lookup) }

	b := arguments.New(opts.Builder...)
	for i, a := range s.Arguments {
		if err := a.apply(b, expand); err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "argument %d (%s)", i, a.Template).
				WithDetail("index", i)
		}
	}

	logger.Debug().
		Str("tool", s.Tool).
		Object("arguments", b).
		Msg("Invocation assembled")

	return &Invocation{Tool: s.Tool, Args: b}, nil
}

var refPattern = regexp.MustCompile(`\$\$\{|\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandRefs replaces ${NAME} with lookup(NAME). "$${" yields a literal "${";
// every other "$" is kept as written, so values like "pa$$w0rd" survive.
func expandRefs(v string, lookup func(string) string) string {
	if !strings.Contains(v, "${") {
		return v
	}
	return refPattern.ReplaceAllStringFunc(v, func(m string) string {
		if m == "$${" {
			return "${"
		}
		return lookup(m[2 : len(m)-1])
	})
}

func (a *Argument) options() []arguments.Option {
	var opts []arguments.Option
	if a.Secret {
		opts = append(opts, arguments.Secret())
	}
	if a.Disallowed != "" {
		opts = append(opts, arguments.Disallowed([]rune(a.Disallowed)...))
	}
	if a.Separator != "" {
		opts = append(opts, arguments.Separator([]rune(a.Separator)[0]))
	}
	if a.QuoteMultiple {
		opts = append(opts, arguments.QuoteMultiple())
	}
	return opts
}

func (a *Argument) apply(b *arguments.Builder, expand func(string) string) error {
	opts := a.options()

	switch {
	case a.Flag != "":
		b.AddFlag(a.Flag, a.Enabled == nil || *a.Enabled)
	case a.Value != nil:
		b.Add(a.Template, expand(*a.Value), opts...)
	case a.Values != nil:
		values := make([]string, len(a.Values))
		for i, v := range a.Values {
			values[i] = expand(v)
		}
		b.AddList(a.Template, values, opts...)
	case a.Pairs.Kind != 0:
		pairs, err := decodePairs(&a.Pairs, expand)
		if err != nil {
			return err
		}
		return b.AddPairs(a.Template, pairs, a.Item, opts...)
	case a.Groups.Kind != 0:
		groups, err := decodeGroups(&a.Groups, expand)
		if err != nil {
			return err
		}
		return b.AddGroups(a.Template, groups, a.Item, opts...)
	}
	return nil
}

// decodePairs reads a mapping node keeping document order
func decodePairs(n *yaml.Node, expand func(string) string) ([]arguments.Pair, error) {
	pairs := make([]arguments.Pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, errors.Newf(errors.ErrSpecInvalid, "pair %q must map a scalar to a scalar", k.Value).
				WithDetail("line", k.Line)
		}
		value := v.Value
		if v.Tag == "!!null" {
			value = ""
		}
		pairs = append(pairs, arguments.Pair{Key: k.Value, Value: expand(value)})
	}
	return pairs, nil
}

// decodeGroups reads a mapping of key to scalar or sequence of scalars
func decodeGroups(n *yaml.Node, expand func(string) string) ([]arguments.Group, error) {
	groups := make([]arguments.Group, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, errors.New(errors.ErrSpecInvalid, "group keys must be scalars").
				WithDetail("line", k.Line)
		}

		g := arguments.Group{Key: k.Value}
		switch v.Kind {
		case yaml.ScalarNode:
			g.Values = []string{expand(v.Value)}
		case yaml.SequenceNode:
			var values []string
			if err := v.Decode(&values); err != nil {
				return nil, errors.Wrapf(err, errors.ErrSpecInvalid, "group %q must list scalars", k.Value).
					WithDetail("line", v.Line)
			}
			for _, val := range values {
				g.Values = append(g.Values, expand(val))
			}
		default:
			return nil, errors.Newf(errors.ErrSpecInvalid, "group %q must be a scalar or a list", k.Value).
				WithDetail("line", v.Line)
		}
		groups = append(groups, g)
	}
	return groups, nil
}
