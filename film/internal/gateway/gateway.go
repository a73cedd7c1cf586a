package gateway

import "errors"

// ErrNotFound is returned when the remote service reports a missing record.
var ErrNotFound = errors.New("not found")
