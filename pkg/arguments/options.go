package arguments

// Option tunes a single Add* call.
type Option func(*addOptions)

type addOptions struct {
	secret        bool
	disallowed    []rune
	separator     rune
	hasSeparator  bool
	quoteMultiple bool
}

func collectOptions(opts []Option) addOptions {
	var o addOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Secret marks the raw values of the call as secrets. They are rendered in
// plaintext for execution and redacted for output.
func Secret() Option {
	return func(o *addOptions) { o.secret = true }
}

// Disallowed adds characters that force a value to be double-quoted.
func Disallowed(chars ...rune) Option {
	return func(o *addOptions) { o.disallowed = append(o.disallowed, chars...) }
}

// Separator joins collection elements into a single value instead of
// emitting one value per element. The separator also forces quoting of
// elements that contain it.
func Separator(r rune) Option {
	return func(o *addOptions) {
		o.separator = r
		o.hasSeparator = true
	}
}

// QuoteMultiple wraps the joined collection in double quotes. It only has an
// effect together with Separator (or for grouped collections).
func QuoteMultiple() Option {
	return func(o *addOptions) { o.quoteMultiple = true }
}

// BuilderOption configures a Builder at construction.
type BuilderOption func(*Builder)

// WithRedactionMarker replaces DefaultRedactionMarker for output renderings.
func WithRedactionMarker(marker string) BuilderOption {
	return func(b *Builder) {
		if marker != "" {
			b.marker = marker
		}
	}
}
