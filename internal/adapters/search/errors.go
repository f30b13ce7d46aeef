package search

import (
	"errors"
)

// ErrSearchStatus marks a non-success HTTP status from the search backend.
// Callers degrade to an empty snippet list per player; the batch never fails.
var ErrSearchStatus = errors.New("search backend returned non-success status")
