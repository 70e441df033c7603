package query

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
)

// DefaultPageSize is used when a page size below 1 is requested.
const DefaultPageSize = 20

// Page is one page of a larger sequence.
type Page[T any] struct {
	Items     []T `json:"items"`
	PageIndex int `json:"page_index"`
	PageSize  int `json:"page_size"`
	Total     int `json:"total"`
}

// TotalPages is the number of pages needed for Total items.
func (p Page[T]) TotalPages() int {
	if p.PageSize < 1 || p.Total == 0 {
		return 0
	}
	n := p.Total / p.PageSize
	if p.Total%p.PageSize != 0 {
		n++
	}
	return n
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.PageIndex < p.TotalPages()
}

// ToPaged orders items by the named property and returns the requested page.
// page is optional: page[0] is the 1-based page index, page[1] the page size.
//
// The property is a dot-separated path of exported field names or json tags,
// matched case-insensitively; pointers are followed and nil pointers sort
// first. An empty property keeps the input order. The input is never modified.
func ToPaged[T any](items []T, property string, ascending bool, page ...int) ([]T, error) {
	if len(items) == 0 {
		return items, nil
	}
	ordered, err := ToOrder(items, property, ascending)
	if err != nil {
		return nil, err
	}
	index, size := pageArgs(page)
	return Paginate(ordered, index, size), nil
}

// ToOrder returns a stably sorted copy of items ordered by the named property.
func ToOrder[T any](items []T, property string, ascending bool) ([]T, error) {
	property = strings.TrimSpace(property)
	if len(items) == 0 || property == "" {
		return slices.Clone(items), nil
	}

	acc, err := accessorFor(reflect.TypeFor[T](), property)
	if err != nil {
		return nil, err
	}

	type keyed struct {
		item T
		key  reflect.Value
		ok   bool
	}
	rows := make([]keyed, len(items))
	for i, item := range items {
		k, ok := acc.get(reflect.ValueOf(&item).Elem())
		rows[i] = keyed{item: item, key: k, ok: ok}
	}

	slices.SortStableFunc(rows, func(x, y keyed) int {
		c := acc.compare(x.key, y.key, x.ok, y.ok)
		if !ascending {
			return -c
		}
		return c
	})

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.item
	}
	return out, nil
}

// OrderBy returns a stably sorted copy of items ordered by key.
func OrderBy[T any, K cmp.Ordered](items []T, key func(T) K, ascending bool) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(x, y T) int {
		c := cmp.Compare(key(x), key(y))
		if !ascending {
			return -c
		}
		return c
	})
	return out
}

// Paginate returns the items of the 1-based page. Out of range pages are empty.
func Paginate[T any](items []T, page, size int) []T {
	page, size = Normalize(page, size)
	// Compare before multiplying: (page-1)*size can overflow for client supplied values.
	if len(items) == 0 || page-1 > (len(items)-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := start + min(size, len(items)-start)
	return items[start:end:end]
}

// ToPage paginates items and records the totals.
func ToPage[T any](items []T, page, size int) Page[T] {
	page, size = Normalize(page, size)
	return Page[T]{
		Items:     Paginate(items, page, size),
		PageIndex: page,
		PageSize:  size,
		Total:     len(items),
	}
}

// Normalize clamps page to at least 1 and replaces sizes below 1 with DefaultPageSize.
func Normalize(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

func pageArgs(page []int) (int, int) {
	index, size := 1, DefaultPageSize
	if len(page) > 0 {
		index = page[0]
	}
	if len(page) > 1 {
		size = page[1]
	}
	return Normalize(index, size)
}
