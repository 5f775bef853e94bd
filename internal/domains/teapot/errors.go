package teapot

import "errors"

// ErrTeapotNotFound is returned for lookups, updates and deletes
// against an unknown id. The message doubles as the response message.
var ErrTeapotNotFound = errors.New("Teapot not found")
