package guard

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies a failure category and the message template used for it.
type Kind string

const (
	KindNullOrEmpty   Kind = "null_or_empty"
	KindNullOrAny     Kind = "null_or_any"
	KindNotFound      Kind = "not_found"
	KindInvalidFormat Kind = "invalid_format"
	KindNotEquals     Kind = "not_equals"
	KindAlreadyExists Kind = "already_exists"
	KindLess          Kind = "less"
	KindGreater       Kind = "greater"
	KindRange         Kind = "range"
	KindCustom        Kind = "custom"
	// KindAggregate marks errors built by Join. It has no template.
	KindAggregate Kind = "aggregate"
)

// Kinds lists every kind that has a message template.
func Kinds() []Kind {
	return []Kind{
		KindNullOrEmpty, KindNullOrAny, KindNotFound, KindInvalidFormat, KindNotEquals,
		KindAlreadyExists, KindLess, KindGreater, KindRange, KindCustom,
	}
}

func defaultMessages() map[Kind]string {
	return map[Kind]string{
		KindNullOrEmpty:   "{param} is null or empty",
		KindNullOrAny:     "{param} is null or has no elements",
		KindNotFound:      "{param} was not found",
		KindInvalidFormat: "{param} has invalid format",
		KindNotEquals:     "{param} is not equal to the expected value",
		KindAlreadyExists: "{param} already exists",
		KindLess:          "{param} must not be less than {min}",
		KindGreater:       "{param} must not be greater than {max}",
		KindRange:         "{param} must be in the range {min} to {max}",
		KindCustom:        "{param} is invalid",
	}
}

// Args are the values substituted into a message template.
type Args struct {
	Param string
	Min   any
	Max   any
}

// Catalog holds message templates and named regex patterns.
// A Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	messages map[Kind]string
	sources  map[string]string
	patterns map[string]*regexp.Regexp
}

// CatalogOption customizes a catalog under construction.
type CatalogOption func(*catalogSpec)

type catalogSpec struct {
	messages map[Kind]string
	patterns map[string]string
}

// WithMessage replaces the template for kind. Templates may use {param}, {min} and {max}.
func WithMessage(kind Kind, template string) CatalogOption {
	return func(s *catalogSpec) { s.messages[kind] = template }
}

// WithPattern adds or replaces a named pattern.
func WithPattern(name, pattern string) CatalogOption {
	return func(s *catalogSpec) { s.patterns[name] = pattern }
}

// NewCatalog builds a catalog from the English defaults plus opts.
func NewCatalog(opts ...CatalogOption) (*Catalog, error) {
	spec := &catalogSpec{messages: defaultMessages(), patterns: defaultPatterns()}
	for _, opt := range opts {
		opt(spec)
	}
	return spec.build()
}

func (s *catalogSpec) build() (*Catalog, error) {
	for kind := range s.messages {
		if !slices.Contains(Kinds(), kind) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
	}

	c := &Catalog{
		messages: s.messages,
		sources:  s.patterns,
		patterns: make(map[string]*regexp.Regexp, len(s.patterns)),
	}
	for name, src := range s.patterns {
		re, err := regexp.Compile(anchor(src))
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidPattern, name), err)
		}
		c.patterns[name] = re
	}
	return c, nil
}

// catalogFile is the YAML layout accepted by LoadCatalog.
type catalogFile struct {
	Messages map[string]string `yaml:"messages"`
	Patterns map[string]string `yaml:"patterns"`
}

// LoadCatalog reads a YAML document of message and pattern overrides and
// applies it on top of the defaults:
//
//	messages:
//	  null_or_empty: "{param} est vide"
//	patterns:
//	  subdomain: "^[a-z]+$"
func LoadCatalog(r io.Reader, opts ...CatalogOption) (*Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrCatalogParse, err)
	}

	fileOpts := make([]CatalogOption, 0, len(f.Messages)+len(f.Patterns)+len(opts))
	for kind, tmpl := range f.Messages {
		fileOpts = append(fileOpts, WithMessage(Kind(kind), tmpl))
	}
	for name, pattern := range f.Patterns {
		fileOpts = append(fileOpts, WithPattern(name, pattern))
	}
	return NewCatalog(append(fileOpts, opts...)...)
}

var defaultCatalog = func() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}()

// DefaultCatalog returns the built-in English catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Format renders the template for kind. Unknown kinds render as "{param} is invalid".
func (c *Catalog) Format(kind Kind, args Args) string {
	tmpl, ok := c.messages[kind]
	if !ok {
		tmpl = defaultMessages()[KindCustom]
	}
	return strings.NewReplacer(
		"{param}", args.Param,
		"{min}", fmt.Sprint(args.Min),
		"{max}", fmt.Sprint(args.Max),
	).Replace(tmpl)
}

// Pattern returns the compiled pattern registered under name.
func (c *Catalog) Pattern(name string) (*regexp.Regexp, bool) {
	re, ok := c.patterns[name]
	return re, ok
}

// Messages returns a copy of the message templates.
func (c *Catalog) Messages() map[Kind]string {
	return maps.Clone(c.messages)
}

// Patterns returns a copy of the pattern sources.
func (c *Catalog) Patterns() map[string]string {
	return maps.Clone(c.sources)
}

// MarshalYAML writes the catalog in the layout LoadCatalog reads.
func (c *Catalog) MarshalYAML() (any, error) {
	f := catalogFile{
		Messages: make(map[string]string, len(c.messages)),
		Patterns: maps.Clone(c.sources),
	}
	for kind, tmpl := range c.messages {
		f.Messages[string(kind)] = tmpl
	}
	return f, nil
}

// Message formats a message with the default catalog.
func Message(kind Kind, args Args) string {
	return defaultCatalog.Format(kind, args)
}

// anchor forces a whole-string match.
func anchor(pattern string) string {
	return `^(?:` + pattern + `)$`
}
