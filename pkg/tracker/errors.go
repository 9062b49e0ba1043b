package tracker

import "errors"

// Error definitions for tracker package.
var (
	// Construction errors.
	ErrEngineMissing = errors.New("engine dependency is required but not set")
)
