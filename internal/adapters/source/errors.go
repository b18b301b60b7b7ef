package source

import "errors"

// Sentinel kinds for source loading errors. Any of these surfacing at
// startup is terminal: the service must not initialize partially.
var (
	ErrOpen          = errors.New("source open failed")
	ErrParse         = errors.New("source parse failed")
	ErrMissingColumn = errors.New("required column missing")
)
