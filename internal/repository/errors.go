package repository

import "errors"

// ErrNotFound is returned when no row matches the query, including the
// case where the row exists but belongs to another user.
var ErrNotFound = errors.New("not found")
