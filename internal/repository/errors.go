package repository

import "errors"

// ErrNotFound is returned, wrapped, when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when an ID prefix matches more than one row.
var ErrAmbiguous = errors.New("ambiguous id prefix")
