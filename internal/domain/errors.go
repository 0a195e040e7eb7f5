package domain

import "errors"

// ErrStoreUnavailable is returned when no document store connection exists.
// The adapter never retries; the process stays disconnected for its lifetime.
var ErrStoreUnavailable = errors.New("document store unavailable")
