package brew

import "errors"

// Referential failures at creation time are reported as validation
// errors (400), not 404 — all request-shape problems stay under one
// error family. ErrBrewNotFound is the ordinary 404 for direct
// lookups.
var (
	ErrBrewNotFound   = errors.New("Brew not found")
	ErrTeapotNotFound = errors.New("Teapot not found")
	ErrTeaNotFound    = errors.New("Tea not found")
)
