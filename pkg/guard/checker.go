package guard

import (
	"regexp"

	"github.com/dmitrymomot/sharedkit/pkg/cache"
)

// Checker runs the pattern-backed predicates against a Catalog and formats
// failures with its templates.
type Checker struct {
	catalog *Catalog
	regexes *cache.LRU[string, *regexp.Regexp]
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithRegexCacheSize bounds the number of ad-hoc patterns kept compiled.
func WithRegexCacheSize(n int) CheckerOption {
	return func(c *Checker) {
		if n > 0 {
			c.regexes = cache.New[string, *regexp.Regexp](n)
		}
	}
}

// NewChecker returns a Checker over catalog. A nil catalog means the default one.
func NewChecker(catalog *Catalog, opts ...CheckerOption) *Checker {
	if catalog == nil {
		catalog = defaultCatalog
	}
	c := &Checker{
		catalog: catalog,
		regexes: cache.New[string, *regexp.Regexp](128),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultChecker = NewChecker(defaultCatalog)

// Default returns the Checker backed by DefaultCatalog.
func Default() *Checker {
	return defaultChecker
}

// Catalog returns the catalog the checker formats messages with.
func (c *Checker) Catalog() *Catalog {
	return c.catalog
}

// Fail builds the error for kind with the checker's templates.
func (c *Checker) Fail(kind Kind, args Args) *Error {
	return &Error{Kind: kind, Param: args.Param, Message: c.catalog.Format(kind, args)}
}

// NotFound builds a not-found error for name.
func (c *Checker) NotFound(name string) error {
	return c.Fail(KindNotFound, Args{Param: name})
}

// AlreadyExists builds an already-exists error for name.
func (c *Checker) AlreadyExists(name string) error {
	return c.Fail(KindAlreadyExists, Args{Param: name})
}

// Errors validates each named value with the checks returned by fn and
// collects failures per name, which is the shape result.FailFields takes.
// A nil map means every value passed.
func (c *Checker) Errors(checks map[string]func(c *Checker) error) map[string][]string {
	var out map[string][]string
	for name, check := range checks {
		if check == nil {
			continue
		}
		if err := check(c); err != nil {
			if out == nil {
				out = make(map[string][]string)
			}
			out[name] = append(out[name], err.Error())
		}
	}
	return out
}

func (c *Checker) compile(pattern string) (*regexp.Regexp, error) {
	return c.regexes.GetOrCompute(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(anchor(pattern))
	})
}
