//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	manager := NewManager()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `java_bin: /usr/bin/java
engine_jar: /opt/engine/proguard.jar
runtime_archive: /opt/jdk/jmods/java.base.jmod
work_dir: /tmp/classtrim
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := manager.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/java", cfg.JavaBin)
	assert.Equal(t, "/opt/engine/proguard.jar", cfg.EngineJar)
	assert.Equal(t, "/opt/jdk/jmods/java.base.jmod", cfg.RuntimeArchive)
	assert.Equal(t, "/tmp/classtrim", cfg.WorkDir)
}

func TestLoadConfig_FillsDefaults(t *testing.T) {
	manager := NewManager()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("engine_jar: /opt/engine.jar\n"), 0644))

	cfg, err := manager.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.JavaBin)
	assert.NotEmpty(t, cfg.WorkDir)
}

func TestLoadConfig_NotFound(t *testing.T) {
	manager := NewManager()

	_, err := manager.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadConfig_ParseError(t *testing.T) {
	manager := NewManager()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("engine_jar: [unclosed"), 0644))

	_, err := manager.LoadConfig(configPath)
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestLoadConfig_MissingEngineJar(t *testing.T) {
	manager := NewManager()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("work_dir: /tmp/x\n"), 0644))

	_, err := manager.LoadConfig(configPath)
	assert.ErrorIs(t, err, ErrEngineJarEmpty)
}

func TestDefaultConfig(t *testing.T) {
	manager := NewManager()

	cfg := manager.DefaultConfig()
	assert.Equal(t, "java", cfg.JavaBin)
	assert.NotEmpty(t, cfg.WorkDir)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{JavaBin: "java", EngineJar: "/opt/engine.jar", WorkDir: "/tmp/x"}
	assert.NoError(t, cfg.Validate())

	assert.ErrorIs(t, (&Config{EngineJar: "x", WorkDir: "y"}).Validate(), ErrJavaBinEmpty)
	assert.ErrorIs(t, (&Config{JavaBin: "x", WorkDir: "y"}).Validate(), ErrEngineJarEmpty)
	assert.ErrorIs(t, (&Config{JavaBin: "x", EngineJar: "y"}).Validate(), ErrWorkDirEmpty)
}
