package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a config file at the mocked location
func writeConfigFile(t *testing.T, path string, content Config) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// mockPaths points both config lookups into tempDir and restores them on
// cleanup.
func mockPaths(t *testing.T, tempDir string) (userPath, projectPath string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})

	userPath = filepath.Join(tempDir, userConfigDir, configFileName)
	projectPath = filepath.Join(tempDir, projectConfigDir, configFileName)
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	return userPath, projectPath
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	userPath, _ := mockPaths(t, t.TempDir())
	writeConfigFile(t, userPath, Config{
		Binary:   "/opt/xmrig/xmrig",
		Terminal: "gnome-terminal",
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/opt/xmrig/xmrig", loaded.Binary)
	assert.Equal(t, "gnome-terminal", loaded.Terminal)
	// Fields absent from the user file keep their defaults.
	assert.Equal(t, "xmrig_parameters.json", loaded.SettingsFile)
	assert.Equal(t, LaunchModeTerminal, loaded.LaunchMode)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userPath, projectPath := mockPaths(t, t.TempDir())
	writeConfigFile(t, userPath, Config{Binary: "/opt/xmrig/xmrig", LogLevel: "debug"})
	writeConfigFile(t, projectPath, Config{Binary: "./build/xmrig", LaunchMode: LaunchModeAttached})

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "./build/xmrig", loaded.Binary, "project layer wins over user layer")
	assert.Equal(t, "debug", loaded.LogLevel, "user layer survives where project is silent")
	assert.Equal(t, LaunchModeAttached, loaded.LaunchMode)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	userPath, _ := mockPaths(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0o755))
	require.NoError(t, os.WriteFile(userPath, []byte("binary: [unclosed"), 0o644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_InvalidLaunchMode(t *testing.T) {
	userPath, _ := mockPaths(t, t.TempDir())
	writeConfigFile(t, userPath, Config{LaunchMode: "detached"})

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid launchMode")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"empty binary", func(c *Config) { c.Binary = "" }, "binary must not be empty"},
		{"empty settings file", func(c *Config) { c.SettingsFile = "" }, "settingsFile must not be empty"},
		{"empty terminal in terminal mode", func(c *Config) { c.Terminal = "" }, "terminal must not be empty"},
		{"empty terminal ok in attached mode", func(c *Config) {
			c.Terminal = ""
			c.LaunchMode = LaunchModeAttached
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
