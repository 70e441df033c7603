package guard

import (
	"errors"
	"strings"
)

var (
	ErrUnknownKind    = errors.New("guard: unknown message kind")
	ErrInvalidPattern = errors.New("guard: invalid pattern")
	ErrCatalogParse   = errors.New("guard: failed to parse catalog")
)

// kindError is the sentinel type matched by Error.Is.
type kindError Kind

func (k kindError) Error() string { return "guard: " + string(k) }

// Sentinels for errors.Is checks against a failure kind.
var (
	ErrNullOrEmpty   error = kindError(KindNullOrEmpty)
	ErrNullOrAny     error = kindError(KindNullOrAny)
	ErrNotFound      error = kindError(KindNotFound)
	ErrInvalidFormat error = kindError(KindInvalidFormat)
	ErrNotEquals     error = kindError(KindNotEquals)
	ErrAlreadyExists error = kindError(KindAlreadyExists)
	ErrLess          error = kindError(KindLess)
	ErrGreater       error = kindError(KindGreater)
	ErrRange         error = kindError(KindRange)
	ErrCustom        error = kindError(KindCustom)
	ErrAggregate     error = kindError(KindAggregate)

	// ErrGuard matches every *Error.
	ErrGuard = errors.New("guard: check failed")
)

// Error is returned by failed checks. The message text is the whole contract;
// Kind and Param are there for callers that need to branch.
type Error struct {
	Kind    Kind
	Param   string
	Message string
}

// Error returns the formatted message unchanged.
func (e *Error) Error() string { return e.Message }

// Is matches the sentinel of e's Kind.
func (e *Error) Is(target error) bool {
	if target == ErrGuard {
		return true
	}
	k, ok := target.(kindError)
	return ok && Kind(k) == e.Kind
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}

// Join returns nil for an empty list, otherwise a single error whose message
// is every message joined by ", ". Blank messages are kept.
func Join(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &Error{Kind: KindAggregate, Message: strings.Join(messages, ", ")}
}

// NotFound builds a not-found error for name using the default catalog.
func NotFound(name string) error {
	return Default().NotFound(name)
}

// AlreadyExists builds an already-exists error for name using the default catalog.
func AlreadyExists(name string) error {
	return Default().AlreadyExists(name)
}
