package result

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/sharedkit/pkg/guard"
)

// None is the payload type of envelopes that carry no data.
type None struct{}

// Result is a success or failure envelope. Success carries an optional
// message and data; failure carries an optional message, details and
// per-field validation errors. Values are immutable once built.
type Result[T any] struct {
	success bool
	message string
	details any
	errors  map[string][]string
	data    *T
}

// envelope is the wire shape. Absent fields are omitted.
type envelope[T any] struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Details any                 `json:"details,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    *T                  `json:"data,omitempty"`
}

// Ok returns a bare success envelope.
func Ok() Result[None] {
	return Result[None]{success: true}
}

// OkMessage returns a success envelope with a message.
func OkMessage(message string) Result[None] {
	return Result[None]{success: true, message: message}
}

// OkData returns a success envelope carrying data and an optional message.
func OkData[T any](data T, message ...string) Result[T] {
	return Result[T]{success: true, data: &data, message: first(message)}
}

// Fail returns a bare failure envelope.
func Fail[T any]() Result[T] {
	return Result[T]{}
}

// FailMessage returns a failure envelope with a message and optional details.
func FailMessage[T any](message string, details ...any) Result[T] {
	return Result[T]{message: message, details: firstAny(details)}
}

// FailError returns a failure envelope whose message is the chained message of err.
func FailError[T any](err error, details ...any) Result[T] {
	return Result[T]{message: ChainMessage(err), details: firstAny(details)}
}

// FailFields returns a failure envelope aggregating per-field errors.
// Fields with no messages are dropped.
func FailFields[T any](fields map[string][]string, details ...any) Result[T] {
	r := Result[T]{details: firstAny(details)}
	for field, msgs := range fields {
		if len(msgs) == 0 {
			continue
		}
		if r.errors == nil {
			r.errors = make(map[string][]string, len(fields))
		}
		r.errors[field] = slices.Clone(msgs)
	}
	return r
}

// FromError converts err into a failure envelope. Guard errors become a
// single field error keyed by their parameter; other errors use FailError.
// A nil error yields a bare success envelope.
func FromError[T any](err error, details ...any) Result[T] {
	if err == nil {
		return Result[T]{success: true}
	}
	if gerr, ok := guard.AsError(err); ok && gerr.Param != "" {
		r := FailFields[T](map[string][]string{gerr.Param: {gerr.Message}}, details...)
		r.message = gerr.Message
		return r
	}
	return FailError[T](err, details...)
}

// ChainMessage renders err followed by every wrapped error's own message.
// A level whose text already ends with the wrapped text contributes only its
// own prefix, so fmt.Errorf("%w") chains are not repeated. Parts are joined with "; ".
func ChainMessage(err error) string {
	var parts []string
	collectChain(err, &parts)
	return strings.Join(parts, "; ")
}

func collectChain(err error, parts *[]string) {
	if err == nil {
		return
	}

	var inner []error
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		// errors.Join and multi-%w: the outer text is just the inner texts.
		for _, e := range u.Unwrap() {
			collectChain(e, parts)
		}
		return
	case interface{ Unwrap() error }:
		if e := u.Unwrap(); e != nil {
			inner = append(inner, e)
		}
	}

	msg := err.Error()
	if len(inner) == 1 {
		innerMsg := inner[0].Error()
		if innerMsg != "" && strings.HasSuffix(msg, innerMsg) {
			msg = strings.TrimRight(strings.TrimSuffix(msg, innerMsg), ": ")
		}
	}
	if msg != "" {
		*parts = append(*parts, msg)
	}
	for _, e := range inner {
		collectChain(e, parts)
	}
}

// IsSuccess reports whether r is a success envelope.
func (r Result[T]) IsSuccess() bool { return r.success }

// Message returns the envelope message, or "".
func (r Result[T]) Message() string { return r.message }

// Details returns the opaque diagnostic payload of a failure.
func (r Result[T]) Details() any { return r.details }

// Errors returns a copy of the per-field errors.
func (r Result[T]) Errors() map[string][]string {
	if r.errors == nil {
		return nil
	}
	out := make(map[string][]string, len(r.errors))
	for k, v := range r.errors {
		out[k] = slices.Clone(v)
	}
	return out
}

// Count is the number of failing fields.
func (r Result[T]) Count() int { return len(r.errors) }

// Data returns the payload and whether one is present.
func (r Result[T]) Data() (T, bool) {
	if r.data == nil {
		var zero T
		return zero, false
	}
	return *r.data, true
}

// Fields returns the failing field names in sorted order.
func (r Result[T]) Fields() []string {
	return slices.Sorted(maps.Keys(r.errors))
}

// Err returns nil for success. For failure it returns a guard aggregate
// error listing field messages, or an error with the envelope message.
func (r Result[T]) Err() error {
	if r.success {
		return nil
	}
	if len(r.errors) > 0 {
		var msgs []string
		for _, field := range r.Fields() {
			msgs = append(msgs, r.errors[field]...)
		}
		return guard.Join(msgs)
	}
	if r.message != "" {
		return errors.New(r.message)
	}
	return ErrFailed
}

// MarshalJSON writes the canonical shape with empty fields omitted.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	env := envelope[T]{Success: r.success, Message: r.message}
	if r.success {
		env.Data = r.data
	} else {
		env.Details = r.details
		env.Errors = r.errors
	}
	return json.Marshal(env)
}

// UnmarshalJSON reads the shape written by MarshalJSON.
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var env envelope[T]
	if err := json.Unmarshal(b, &env); err != nil {
		return errors.Join(ErrDecode, err)
	}
	*r = Result[T]{success: env.Success, message: env.Message}
	if env.Success {
		r.data = env.Data
	} else {
		r.details = env.Details
		r.errors = env.Errors
	}
	return nil
}

// ToJSON serializes the envelope with absent fields omitted.
func (r Result[T]) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// Parse decodes an envelope produced by ToJSON.
func Parse[T any](b []byte) (Result[T], error) {
	var r Result[T]
	err := json.Unmarshal(b, &r)
	return r, err
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func firstAny(v []any) any {
	if len(v) == 0 {
		return nil
	}
	return v[0]
}
