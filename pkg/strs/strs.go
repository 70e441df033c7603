package strs

import (
	"encoding/base64"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Truncate shortens s to at most n runes. An optional ellipsis is appended
// when s was cut and counts towards n.
func Truncate(s string, n int, ellipsis ...string) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	tail := ""
	if len(ellipsis) > 0 {
		tail = ellipsis[0]
	}
	keep := n - utf8.RuneCountInString(tail)
	if keep <= 0 {
		return string([]rune(tail)[:n])
	}
	return string([]rune(s)[:keep]) + tail
}

// ToTitle title-cases s using the rules of lang, or language-neutral rules when omitted.
func ToTitle(s string, lang ...language.Tag) string {
	tag := language.Und
	if len(lang) > 0 {
		tag = lang[0]
	}
	return cases.Title(tag).String(s)
}

// Mask replaces every rune except the last visible ones with mask.
func Mask(s string, visible int, mask rune) string {
	r := []rune(s)
	if visible < 0 {
		visible = 0
	}
	hidden := len(r) - visible
	for i := 0; i < hidden; i++ {
		r[i] = mask
	}
	return string(r)
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// DefaultIfEmpty returns def when s is empty or only whitespace.
func DefaultIfEmpty(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// ToBase64 encodes s with standard padded base64.
func ToBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// FromBase64 decodes standard padded base64.
func FromBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SplitAndTrim splits s on sep, trims each part and drops empty ones.
func SplitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToSnakeCase converts "UserID" or "user id" to "user_id".
func ToSnakeCase(s string) string {
	return strings.Join(lowerWords(s), "_")
}

// ToCamelCase converts "user_id" or "User ID" to "userId".
func ToCamelCase(s string) string {
	words := lowerWords(s)
	for i := 1; i < len(words); i++ {
		words[i] = upperFirst(words[i])
	}
	return strings.Join(words, "")
}

// ToPascalCase converts "user_id" to "UserId".
func ToPascalCase(s string) string {
	words := lowerWords(s)
	for i := range words {
		words[i] = upperFirst(words[i])
	}
	return strings.Join(words, "")
}

func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}

// lowerWords splits on non-alphanumerics and on case boundaries, keeping
// acronyms together: "HTTPServerID" gives [http server id].
func lowerWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	r := []rune(s)
	for i, c := range r {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			flush()
			continue
		}
		if unicode.IsUpper(c) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, c)
	}
	flush()
	return words
}
