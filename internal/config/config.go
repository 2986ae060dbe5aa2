package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBPath        string `mapstructure:"db_path"`
	ThemeName     string `mapstructure:"theme_name"`
	DebounceMs    int    `mapstructure:"debounce_ms"`
	TrendingLimit int    `mapstructure:"trending_limit"`
	LogLevel      string `mapstructure:"log_level"`
	LogPath       string `mapstructure:"log_path"`

	MetadataBaseURL string `mapstructure:"metadata_base_url"`

	// secrets and deployment identifiers, environment-only
	MetadataAPIKey    string `mapstructure:"-"`
	StoreEndpoint     string `mapstructure:"-"`
	StoreProjectID    string `mapstructure:"-"`
	StoreDatabaseID   string `mapstructure:"-"`
	StoreCollectionID string `mapstructure:"-"`
	StoreAPIKey       string `mapstructure:"-"`
}

const (
	DefaultDebounceMs    = 500
	DefaultTrendingLimit = 5
	DefaultMetadataURL   = "https://api.themoviedb.org/3"
)

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".reelscout")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// loads config from file, then overlays environment-provided secrets
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := GetDefaultConfig()

	if ConfigExists() {
		viper.SetConfigFile(configFile)
		viper.SetConfigType("yaml")

		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := viper.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyDefaults(cfg)
	applyEnv(cfg)

	return cfg, nil
}

// saves config to file; secrets are never written
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("db_path", cfg.DBPath)
	viper.Set("theme_name", cfg.ThemeName)
	viper.Set("debounce_ms", cfg.DebounceMs)
	viper.Set("trending_limit", cfg.TrendingLimit)
	viper.Set("log_level", cfg.LogLevel)
	viper.Set("log_path", cfg.LogPath)
	viper.Set("metadata_base_url", cfg.MetadataBaseURL)

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		DBPath:          filepath.Join(configDir, "history.db"),
		ThemeName:       "",
		DebounceMs:      DefaultDebounceMs,
		TrendingLimit:   DefaultTrendingLimit,
		LogLevel:        "info",
		LogPath:         filepath.Join(configDir, "reelscout.log"),
		MetadataBaseURL: DefaultMetadataURL,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "history.db")
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = DefaultDebounceMs
	}
	if cfg.TrendingLimit <= 0 {
		cfg.TrendingLimit = DefaultTrendingLimit
	}
	if cfg.MetadataBaseURL == "" {
		cfg.MetadataBaseURL = DefaultMetadataURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func applyEnv(cfg *Config) {
	viper.SetDefault("tmdb_api_key", "")
	_ = viper.BindEnv("tmdb_api_key", "TMDB_API_KEY")
	_ = viper.BindEnv("appwrite_endpoint", "APPWRITE_ENDPOINT")
	_ = viper.BindEnv("appwrite_project_id", "APPWRITE_PROJECT_ID")
	_ = viper.BindEnv("appwrite_database_id", "APPWRITE_DATABASE_ID")
	_ = viper.BindEnv("appwrite_collection_id", "APPWRITE_COLLECTION_ID")
	_ = viper.BindEnv("appwrite_api_key", "APPWRITE_API_KEY")

	cfg.MetadataAPIKey = viper.GetString("tmdb_api_key")
	cfg.StoreEndpoint = viper.GetString("appwrite_endpoint")
	cfg.StoreProjectID = viper.GetString("appwrite_project_id")
	cfg.StoreDatabaseID = viper.GetString("appwrite_database_id")
	cfg.StoreCollectionID = viper.GetString("appwrite_collection_id")
	cfg.StoreAPIKey = viper.GetString("appwrite_api_key")
}

func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// ValidateMetadata checks presence of the metadata API credentials.
func (c *Config) ValidateMetadata() error {
	if c.MetadataAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is not set")
	}
	return nil
}

// ValidateStore checks presence of the document store identifiers.
func (c *Config) ValidateStore() error {
	switch {
	case c.StoreEndpoint == "":
		return fmt.Errorf("APPWRITE_ENDPOINT is not set")
	case c.StoreProjectID == "":
		return fmt.Errorf("APPWRITE_PROJECT_ID is not set")
	case c.StoreDatabaseID == "":
		return fmt.Errorf("APPWRITE_DATABASE_ID is not set")
	case c.StoreCollectionID == "":
		return fmt.Errorf("APPWRITE_COLLECTION_ID is not set")
	case c.StoreAPIKey == "":
		return fmt.Errorf("APPWRITE_API_KEY is not set")
	}
	return nil
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}
