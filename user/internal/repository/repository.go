package repository

import "errors"

// ErrNotFound is returned when a requested record is not in the repository.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a created record conflicts with an existing one.
var ErrAlreadyExists = errors.New("already exists")
