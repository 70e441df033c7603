package strs_test

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sharedkit/pkg/strs"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []strs.SlugOption
		want string
	}{
		{"basic", "Hello World!", nil, "hello-world"},
		{"accents", "Crème Brûlée", nil, "creme-brulee"},
		{"collapses separators", "  a -- b  ", nil, "a-b"},
		{"max length", "Hello World", []strs.SlugOption{strs.MaxLength(7)}, "hello-w"},
		{"custom separator", "Hello World", []strs.SlugOption{strs.Separator("_")}, "hello_world"},
		{"keep case", "Hello World", []strs.SlugOption{strs.Lowercase(false)}, "Hello-World"},
		{"strip chars", "it's mine", []strs.SlugOption{strs.StripChars("'")}, "its-mine"},
		{"replace", "Tom & Jerry", []strs.SlugOption{strs.CustomReplace(map[string]string{"&": "and"})}, "tom-and-jerry"},
		{"only symbols", "!!!", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strs.Slug(tt.in, tt.opts...))
		})
	}
}

func TestSlug_Suffix(t *testing.T) {
	t.Run("appends suffix", func(t *testing.T) {
		s := strs.Slug("Hello World", strs.WithSuffix(6))
		assert.Regexp(t, regexp.MustCompile(`^hello-world-[a-z0-9]{6}$`), s)
	})

	t.Run("respects max length", func(t *testing.T) {
		s := strs.Slug("Hello World", strs.WithSuffix(4), strs.MaxLength(10))
		assert.LessOrEqual(t, utf8.RuneCountInString(s), 10)
		assert.True(t, strings.HasPrefix(s, "hello"))
	})

	t.Run("suffix only when no room", func(t *testing.T) {
		s := strs.Slug("Hello World", strs.WithSuffix(8), strs.MaxLength(5))
		assert.Len(t, s, 5)
	})

	t.Run("suffixes differ", func(t *testing.T) {
		assert.NotEqual(t, strs.Slug("x", strs.WithSuffix(12)), strs.Slug("x", strs.WithSuffix(12)))
	})
}
