package strs

import (
	"crypto/rand"
	"strings"
	"unicode"
)

// SlugOption configures Slug.
type SlugOption func(*slugConfig)

type slugConfig struct {
	maxLength     int
	separator     string
	lowercase     bool
	stripChars    string
	customReplace map[string]string
	suffixLength  int
}

// MaxLength limits the slug to n runes. Zero means no limit.
func MaxLength(n int) SlugOption {
	return func(c *slugConfig) {
		c.maxLength = n
	}
}

// Separator replaces the default "-" separator.
func Separator(s string) SlugOption {
	return func(c *slugConfig) {
		c.separator = s
	}
}

// Lowercase controls case folding. Enabled by default.
func Lowercase(enabled bool) SlugOption {
	return func(c *slugConfig) {
		c.lowercase = enabled
	}
}

// StripChars removes every listed character before slugifying.
func StripChars(chars string) SlugOption {
	return func(c *slugConfig) {
		c.stripChars = chars
	}
}

// CustomReplace applies replacements such as {"&": "and"} before slugifying.
func CustomReplace(replacements map[string]string) SlugOption {
	return func(c *slugConfig) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length.
func WithSuffix(length int) SlugOption {
	return func(c *slugConfig) {
		c.suffixLength = length
	}
}

// Slug turns s into a URL-safe identifier: accents are removed and every run
// of characters other than ASCII letters and digits becomes one separator.
func Slug(s string, opts ...SlugOption) string {
	cfg := &slugConfig{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}
	for _, char := range cfg.stripChars {
		s = strings.ReplaceAll(s, string(char), "")
	}
	s = RemoveAccents(s)

	var b strings.Builder
	b.Grow(len(s))

	sepLen := len([]rune(cfg.separator))
	lastWasSep := true
	count := 0
	for _, r := range s {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			count++
			continue
		}
		if !lastWasSep {
			if cfg.maxLength > 0 && count+sepLen > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			lastWasSep = true
			count += sepLen
		}
	}

	out := b.String()
	if cfg.separator != "" {
		out = strings.TrimSuffix(out, cfg.separator)
	}
	if cfg.suffixLength <= 0 {
		return out
	}

	n := cfg.suffixLength
	if cfg.maxLength > 0 {
		n = min(n, cfg.maxLength)
	}
	suffix := randomSuffix(n, cfg.lowercase)

	if cfg.maxLength > 0 {
		room := cfg.maxLength - sepLen - n
		if room <= 0 {
			return suffix
		}
		out = strings.TrimSuffix(Truncate(out, room), cfg.separator)
	}
	if out == "" {
		return suffix
	}
	return out + cfg.separator + suffix
}

func randomSuffix(length int, lowercase bool) string {
	charset := "abcdefghijklmnopqrstuvwxyz0123456789"
	if !lowercase {
		charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	}

	b := make([]byte, length)
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
