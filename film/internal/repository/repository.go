package repository

import "errors"

// ErrNotFound is returned when a requested record is not in the repository.
var ErrNotFound = errors.New("not found")
