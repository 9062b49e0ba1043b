package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrJavaBinEmpty   = errors.New("java_bin cannot be empty")
	ErrEngineJarEmpty = errors.New("engine_jar cannot be empty")
	ErrWorkDirEmpty   = errors.New("work_dir cannot be empty")
)
