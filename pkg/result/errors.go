package result

import "errors"

var (
	// ErrFailed is returned by Result.Err for failures without message or field errors.
	ErrFailed = errors.New("result: operation failed")

	// ErrDecode is returned when an envelope cannot be decoded.
	ErrDecode = errors.New("result: failed to decode envelope")
)
