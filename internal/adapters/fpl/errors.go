package fpl

import (
	"errors"
)

// ErrUpstreamStatus marks a non-success HTTP status from the provider.
// Callers treat it as a whole-request failure; there is no retry.
var ErrUpstreamStatus = errors.New("upstream returned non-success status")
