package config

import (
	"github.com/arthur-debert/cigen/pkg/arguments"
	"github.com/arthur-debert/cigen/pkg/errors"
	"github.com/arthur-debert/cigen/pkg/textwriter"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective cigen configuration
type Config struct {
	Writer    Writer    `koanf:"writer" toml:"writer"`
	Arguments Arguments `koanf:"arguments" toml:"arguments"`
}

// Writer holds settings for generated structured documents
type Writer struct {
	IndentFactor  int    `koanf:"indent_factor" toml:"indent_factor"`
	CommentPrefix string `koanf:"comment_prefix" toml:"comment_prefix"`
}

// Arguments holds settings for assembled tool invocations
type Arguments struct {
	RedactionMarker string `koanf:"redaction_marker" toml:"redaction_marker"`
}

// Validate checks values that would produce broken output
func (c *Config) Validate() error {
	if c.Writer.IndentFactor < 1 {
		return errors.Newf(errors.ErrConfigParse, "writer.indent_factor must be at least 1, got %d", c.Writer.IndentFactor).
			WithDetail("key", "writer.indent_factor")
	}
	if c.Writer.CommentPrefix == "" {
		return errors.New(errors.ErrConfigParse, "writer.comment_prefix must not be empty").
			WithDetail("key", "writer.comment_prefix")
	}
	if c.Arguments.RedactionMarker == "" {
		return errors.New(errors.ErrConfigParse, "arguments.redaction_marker must not be empty").
			WithDetail("key", "arguments.redaction_marker")
	}
	return nil
}

// WriterOptions returns the textwriter options matching c
func (c *Config) WriterOptions() []textwriter.Option {
	return []textwriter.Option{
		textwriter.WithFactor(c.Writer.IndentFactor),
		textwriter.WithCommentPrefix(c.Writer.CommentPrefix),
	}
}

// BuilderOptions returns the arguments builder options matching c
func (c *Config) BuilderOptions() []arguments.BuilderOption {
	return []arguments.BuilderOption{
		arguments.WithRedactionMarker(c.Arguments.RedactionMarker),
	}
}

// ToTOML renders c as a TOML document
func (c *Config) ToTOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}
