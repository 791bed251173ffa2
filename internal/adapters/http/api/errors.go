package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrInvalidPath  = errors.New("invalid path parameter")
	ErrInvalidQuery = errors.New("invalid query parameter")
)
