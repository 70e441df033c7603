package httpx

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sharedkit/pkg/query"
)

// ClientIP returns the caller's address, preferring proxy headers in the order
// CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For (first valid entry) and
// X-Real-IP, then falling back to RemoteAddr. Invalid values are skipped.
func ClientIP(r *http.Request) string {
	for _, h := range []string{"CF-Connecting-IP", "DO-Connecting-IP"} {
		if ip := parseIP(r.Header.Get(h)); ip != "" {
			return ip
		}
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for part := range strings.SplitSeq(fwd, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}
	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}

// IsAjax reports whether the request was sent by XMLHttpRequest.
func IsAjax(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// IsHTMX reports whether the request was sent by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// BaseURL returns scheme://host of the request, honoring X-Forwarded-Proto and X-Forwarded-Host.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(p, ",")[0]))
	}

	host := r.Host
	if h := r.Header.Get("X-Forwarded-Host"); h != "" {
		host = strings.TrimSpace(strings.Split(h, ",")[0])
	}
	return scheme + "://" + host
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// QueryString returns the query parameter key, or def when it is missing or blank.
func QueryString(r *http.Request, key, def string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		return v
	}
	return def
}

// QueryInt returns the query parameter key as an int, or def when it is missing or not a number.
func QueryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil {
		return def
	}
	return v
}

// QueryBool returns the query parameter key as a bool, or def when it cannot be parsed.
func QueryBool(r *http.Request, key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil {
		return def
	}
	return v
}

// RouteParam returns a chi URL parameter.
func RouteParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// PageRequest is the paging and ordering requested through the query string.
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Ascending bool
}

// PageFromRequest reads page, size (or page_size), sort and order=asc|desc.
// Sizes below 1 fall back to defaultSize, and then to query.DefaultPageSize.
func PageFromRequest(r *http.Request, defaultSize int) PageRequest {
	if defaultSize < 1 {
		defaultSize = query.DefaultPageSize
	}
	size := QueryInt(r, "size", QueryInt(r, "page_size", defaultSize))
	if size < 1 {
		size = defaultSize
	}
	page, size := query.Normalize(QueryInt(r, "page", 1), size)

	return PageRequest{
		Page:      page,
		Size:      size,
		Sort:      QueryString(r, "sort", ""),
		Ascending: !strings.EqualFold(QueryString(r, "order", "asc"), "desc"),
	}
}

// Apply orders and paginates items as requested.
func Apply[T any](p PageRequest, items []T) (query.Page[T], error) {
	ordered, err := query.ToOrder(items, p.Sort, p.Ascending)
	if err != nil {
		return query.Page[T]{}, err
	}
	return query.ToPage(ordered, p.Page, p.Size), nil
}
