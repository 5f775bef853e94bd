package tea

import "errors"

var ErrTeaNotFound = errors.New("Tea not found")
