package departments

import "errors"

// ErrInvalidRules indicates the departments source could not be decoded.
var ErrInvalidRules = errors.New("invalid department rules")
