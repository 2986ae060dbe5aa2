package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	// create temp directory
	tmpDir, err := os.MkdirTemp("", "reelscout_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "", cfg.ThemeName) // empty until set
	assert.Equal(t, DefaultDebounceMs, cfg.DebounceMs)
	assert.Equal(t, DefaultTrendingLimit, cfg.TrendingLimit)
	assert.Equal(t, DefaultMetadataURL, cfg.MetadataBaseURL)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// should return default values when no config file exists
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 500, cfg.DebounceMs)
	assert.Equal(t, 5, cfg.TrendingLimit)
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := &Config{
		DBPath:          filepath.Join(configDir, "custom.db"),
		ThemeName:       "nord",
		DebounceMs:      250,
		TrendingLimit:   10,
		LogLevel:        "debug",
		MetadataBaseURL: "https://example.test/3",
	}

	err := SaveConfig(cfg)
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.DBPath, loaded.DBPath)
	assert.Equal(t, "nord", loaded.ThemeName)
	assert.Equal(t, 250, loaded.DebounceMs)
	assert.Equal(t, 10, loaded.TrendingLimit)
	assert.Equal(t, "https://example.test/3", loaded.MetadataBaseURL)
}

func TestLoadConfig_EnvSecrets(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	t.Setenv("TMDB_API_KEY", "test-bearer-token")
	t.Setenv("APPWRITE_ENDPOINT", "https://store.test/v1")
	t.Setenv("APPWRITE_PROJECT_ID", "proj")
	t.Setenv("APPWRITE_DATABASE_ID", "db")
	t.Setenv("APPWRITE_COLLECTION_ID", "col")
	t.Setenv("APPWRITE_API_KEY", "store-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-bearer-token", cfg.MetadataAPIKey)
	assert.Equal(t, "https://store.test/v1", cfg.StoreEndpoint)
	assert.NoError(t, cfg.ValidateMetadata())
	assert.NoError(t, cfg.ValidateStore())
}

func TestValidate_MissingSecrets(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Error(t, cfg.ValidateMetadata())
	assert.Error(t, cfg.ValidateStore())

	cfg.StoreEndpoint = "https://store.test/v1"
	cfg.StoreProjectID = "proj"
	err := cfg.ValidateStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APPWRITE_DATABASE_ID")
}

func TestConfig_Debounce(t *testing.T) {
	cfg := &Config{DebounceMs: 500}
	assert.Equal(t, "500ms", cfg.Debounce().String())
}
