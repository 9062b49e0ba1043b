// Package config provides configuration management functionality for the
// classtrim tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mockconfig.gen.go -package=config

// Config represents the application configuration.
type Config struct {
	// JavaBin is the java executable used to launch the shrinker engine.
	JavaBin string `yaml:"java_bin"`
	// EngineJar is the path to the shrinker engine jar.
	EngineJar string `yaml:"engine_jar"`
	// RuntimeArchive is the JDK base library archive registered as a library
	// input on every engine run.
	RuntimeArchive string `yaml:"runtime_archive,omitempty"`
	// WorkDir is the root directory for engine scratch files and the
	// temporary class output tree.
	WorkDir string `yaml:"work_dir"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Fill unset fields from defaults before validating
	defaults := c.DefaultConfig()
	if config.JavaBin == "" {
		config.JavaBin = defaults.JavaBin
	}
	if config.RuntimeArchive == "" {
		config.RuntimeArchive = defaults.RuntimeArchive
	}
	if config.WorkDir == "" {
		config.WorkDir = defaults.WorkDir
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the default configuration. EngineJar has no usable
// default and must come from the config file or a flag.
func (c *realManager) DefaultConfig() *Config {
	return &Config{
		JavaBin:        "java",
		RuntimeArchive: defaultRuntimeArchive(),
		WorkDir:        filepath.Join(".", ".classtrim"),
	}
}

// defaultRuntimeArchive locates the JDK base module archive from JAVA_HOME.
func defaultRuntimeArchive() string {
	javaHome := os.Getenv("JAVA_HOME")
	if javaHome == "" {
		return ""
	}
	return filepath.Join(javaHome, "jmods", "java.base.jmod")
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.JavaBin == "" {
		return ErrJavaBinEmpty
	}
	if c.EngineJar == "" {
		return ErrEngineJarEmpty
	}
	if c.WorkDir == "" {
		return ErrWorkDirEmpty
	}
	return nil
}
