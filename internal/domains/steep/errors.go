package steep

import "errors"

// ErrBrewNotFound is a 404 on the nested steep routes — asymmetric
// with brew creation's 400 referential errors, and kept that way: the
// fixture's value is exact reproduction of the existing contract.
var ErrBrewNotFound = errors.New("Brew not found")
