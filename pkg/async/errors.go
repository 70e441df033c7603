package async

import "errors"

var (
	ErrTimeout   = errors.New("async: timed out waiting for future completion")
	ErrNoFutures = errors.New("async: WaitAny called with no futures")
)
