package query

import "errors"

var (
	ErrUnknownProperty = errors.New("query: unknown property")
	ErrUnsortable      = errors.New("query: property type is not sortable")
)
