package engine

import "errors"

// Error definitions for engine package.
var (
	// Engine invocation errors.
	ErrEngineFailed     = errors.New("engine invocation failed")
	ErrEngineJarMissing = errors.New("engine jar path is not set")
)
