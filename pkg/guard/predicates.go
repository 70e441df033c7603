package guard

import (
	"net/mail"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"unicode"
)

// Outcome reports how many of the checked values failed a predicate.
// HasErrors is always Count > 0.
type Outcome struct {
	HasErrors bool
	Count     int
}

func tally[V any](values []V, failed func(V) bool) Outcome {
	n := 0
	for _, v := range values {
		if failed(v) {
			n++
		}
	}
	return Outcome{HasErrors: n > 0, Count: n}
}

// IsNullOrEmpty counts values that are nil, blank strings or zero values.
func IsNullOrEmpty(values ...any) Outcome {
	return tally(values, isEmpty)
}

// IsNullOrAny counts collections that are nil or have no elements.
func IsNullOrAny(values ...any) Outcome {
	return tally(values, isEmptyCollection)
}

// IsGreater counts values whose numeric projection is strictly greater than max.
// Values that cannot be measured are never counted.
func IsGreater(max int64, values ...any) Outcome {
	return tally(values, func(v any) bool {
		m, ok := measure(v)
		return ok && m.compare(max) > 0
	})
}

// IsLess counts values whose numeric projection is strictly less than min.
func IsLess(min int64, values ...any) Outcome {
	return tally(values, func(v any) bool {
		m, ok := measure(v)
		return ok && m.compare(min) < 0
	})
}

// Greater is the typed form of IsGreater.
func Greater[T Number](max T, values ...T) Outcome {
	return tally(values, func(v T) bool { return v > max })
}

// Less is the typed form of IsLess.
func Less[T Number](min T, values ...T) Outcome {
	return tally(values, func(v T) bool { return v < min })
}

// IsEqual counts values that are not deeply equal to expected.
func IsEqual(expected any, values ...any) Outcome {
	return tally(values, func(v any) bool {
		return !reflect.DeepEqual(expected, v)
	})
}

// IsRange counts values that are absent, less than min or greater than max.
// The bounds are checked independently, so min > max flags every value.
func IsRange(min, max int64, values ...any) Outcome {
	return tally(values, func(v any) bool {
		return outOfRange(v, min, max)
	})
}

func outOfRange(v any, min, max int64) bool {
	if isAbsent(v) {
		return true
	}
	m, ok := measure(v)
	if !ok {
		return false
	}
	return m.compare(min) < 0 || m.compare(max) > 0
}

// IsRegexMatch counts values that are empty or do not fully match pattern.
func IsRegexMatch(pattern string, values ...any) Outcome {
	return defaultChecker.IsRegexMatch(pattern, values...)
}

// IsName counts values that are not valid personal names.
func IsName(values ...any) Outcome { return defaultChecker.IsName(values...) }

// IsEmail counts values that are not valid email addresses.
func IsEmail(values ...any) Outcome { return defaultChecker.IsEmail(values...) }

// IsSubdomain counts values that are not a single DNS label.
func IsSubdomain(values ...any) Outcome { return defaultChecker.IsSubdomain(values...) }

// IsDomain counts values that are not domain names.
func IsDomain(values ...any) Outcome { return defaultChecker.IsDomain(values...) }

// IsHostname counts values that are not host names.
func IsHostname(values ...any) Outcome { return defaultChecker.IsHostname(values...) }

// IsRegexMatch counts values that are empty or do not fully match pattern.
// An invalid pattern fails every value.
func (c *Checker) IsRegexMatch(pattern string, values ...any) Outcome {
	re, err := c.compile(pattern)
	return tally(values, func(v any) bool {
		if err != nil {
			return true
		}
		s, ok := stringOf(v)
		return !ok || strings.TrimSpace(s) == "" || !re.MatchString(s)
	})
}

// IsPattern counts values that are empty or do not match the named catalog
// pattern. An unknown name fails every value.
func (c *Checker) IsPattern(name string, values ...any) Outcome {
	re, known := c.catalog.Pattern(name)
	return tally(values, func(v any) bool {
		if !known {
			return true
		}
		s, ok := stringOf(v)
		return !ok || strings.TrimSpace(s) == "" || !re.MatchString(s)
	})
}

// IsName counts values that are not personal names per the catalog's name pattern.
func (c *Checker) IsName(values ...any) Outcome { return c.IsPattern(PatternNameKey, values...) }

// IsEmail requires both the email pattern and net/mail to accept the value
// as a bare address.
func (c *Checker) IsEmail(values ...any) Outcome {
	re, known := c.catalog.Pattern(PatternEmailKey)
	return tally(values, func(v any) bool {
		s, ok := stringOf(v)
		if !ok || !known || strings.TrimSpace(s) == "" || !re.MatchString(s) {
			return true
		}
		addr, err := mail.ParseAddress(s)
		return err != nil || addr.Address != s
	})
}

// IsSubdomain counts values that are not a single DNS label.
func (c *Checker) IsSubdomain(values ...any) Outcome {
	return c.IsPattern(PatternSubdomainKey, values...)
}

// IsDomain counts values that are not domain names.
func (c *Checker) IsDomain(values ...any) Outcome { return c.IsPattern(PatternDomainKey, values...) }

// IsHostname counts values that are not host names.
func (c *Checker) IsHostname(values ...any) Outcome {
	return c.IsPattern(PatternHostnameKey, values...)
}

// IsDirectory counts values that are empty or not an existing directory.
func IsDirectory(values ...any) Outcome {
	return tally(values, func(v any) bool {
		s, ok := stringOf(v)
		if !ok || strings.TrimSpace(s) == "" {
			return true
		}
		info, err := os.Stat(s)
		return err != nil || !info.IsDir()
	})
}

// IsFile counts values that are empty or not an existing regular file.
func IsFile(values ...any) Outcome {
	return tally(values, func(v any) bool {
		s, ok := stringOf(v)
		if !ok || strings.TrimSpace(s) == "" {
			return true
		}
		info, err := os.Stat(s)
		return err != nil || !info.Mode().IsRegular()
	})
}

// IsFileExtension counts values whose extension is missing or not in allowed.
// Comparison ignores case and a leading dot in allowed entries.
func IsFileExtension(allowed []string, values ...any) Outcome {
	set := make(map[string]struct{}, len(allowed))
	for _, ext := range allowed {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return tally(values, func(v any) bool {
		s, ok := stringOf(v)
		if !ok {
			return true
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(strings.TrimSpace(s)), "."))
		if ext == "" {
			return true
		}
		_, found := set[ext]
		return !found
	})
}

// IsDigit counts strings without at least one digit.
func IsDigit(values ...any) Outcome { return tally(values, lacks(unicode.IsDigit)) }

// IsLowercase counts strings without at least one lowercase letter.
func IsLowercase(values ...any) Outcome { return tally(values, lacks(unicode.IsLower)) }

// IsUppercase counts strings without at least one uppercase letter.
func IsUppercase(values ...any) Outcome { return tally(values, lacks(unicode.IsUpper)) }

// IsEspecialChars counts strings without at least one character that is
// neither a letter nor a digit.
func IsEspecialChars(values ...any) Outcome {
	return tally(values, lacks(func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}

// IsUniqueChars counts strings that are empty or repeat a character.
func IsUniqueChars(values ...any) Outcome {
	return tally(values, func(v any) bool {
		s, ok := stringOf(v)
		if !ok || s == "" {
			return true
		}
		seen := make(map[rune]struct{}, len(s))
		for _, r := range s {
			if _, dup := seen[r]; dup {
				return true
			}
			seen[r] = struct{}{}
		}
		return false
	})
}

// IsCustom counts predicates that return true, where true means "invalid".
// Nil predicates are skipped.
func IsCustom(predicates ...func() bool) Outcome {
	return tally(predicates, func(fn func() bool) bool {
		return fn != nil && fn()
	})
}

// lacks fails non-strings, empty strings and strings with no rune matching want.
func lacks(want func(rune) bool) func(any) bool {
	return func(v any) bool {
		s, ok := stringOf(v)
		if !ok {
			return true
		}
		return !strings.ContainsFunc(s, want)
	}
}
