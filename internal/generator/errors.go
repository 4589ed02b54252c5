package generator

import "errors"

// ErrInvalidGlob indicates a Tailwind content glob is not a valid pattern.
var ErrInvalidGlob = errors.New("generator: invalid content glob")
