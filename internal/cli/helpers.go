package cli

import (
	"fmt"

	"movie-search/internal/config"
	"movie-search/internal/logger"
	"movie-search/internal/metadata"
	"movie-search/internal/repository"
	"movie-search/internal/repository/docstore"
	"movie-search/internal/repository/sqlite"
)

// builds a logger for one-shot commands; output goes to stderr so piped
// stdout stays clean
func newCommandLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: "console",
	})
}

// builds a logger for the TUI; writing to stderr would corrupt the
// alternate screen, so it goes to the configured log file instead
func newTUILogger(cfg *config.Config) *logger.Logger {
	if cfg.LogPath == "" {
		return logger.Discard()
	}
	return logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Output: cfg.LogPath,
	})
}

func newMetadataClient(cfg *config.Config, log *logger.Logger) (*metadata.Client, error) {
	if err := cfg.ValidateMetadata(); err != nil {
		return nil, err
	}
	return metadata.NewClient(metadata.Config{
		BaseURL: cfg.MetadataBaseURL,
		APIKey:  cfg.MetadataAPIKey,
	}, log)
}

func newRecordRepository(cfg *config.Config, log *logger.Logger) (repository.SearchRecordRepository, error) {
	if err := cfg.ValidateStore(); err != nil {
		return nil, err
	}
	client, err := docstore.NewClient(docstore.Config{
		Endpoint:     cfg.StoreEndpoint,
		ProjectID:    cfg.StoreProjectID,
		DatabaseID:   cfg.StoreDatabaseID,
		CollectionID: cfg.StoreCollectionID,
		APIKey:       cfg.StoreAPIKey,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document store client: %w", err)
	}
	return docstore.NewSearchRecordRepository(client), nil
}

func newHistoryDB(cfg *config.Config) (*sqlite.DB, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return db, nil
}
