package cmd

import (
	"fmt"

	"segment-audit/core/config"
	"segment-audit/core/database"
	"segment-audit/core/storage"
	"segment-audit/feature/metadata"

	"go.uber.org/zap"
)

// newSource builds the metadata source selected by audit.metadata_source.
func newSource(cfg *config.Config, logg *zap.Logger) (metadata.Source, error) {
	if !cfg.Audit.IsValidSource() {
		return nil, fmt.Errorf("unsupported metadata source: %s", cfg.Audit.MetadataSource)
	}

	switch cfg.Audit.MetadataSource {
	case config.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		logg.Debug("Reading metadata from storage",
			zap.String("endpoint", cfg.Storage.Endpoint),
			zap.String("bucket", cfg.Storage.Bucket),
		)
		return metadata.NewStorageSource(client, cfg.Storage.Bucket, cfg.Audit.MetadataObject), nil

	case config.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to metadata database: %w", err)
		}
		logg.Debug("Reading metadata from database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("table", cfg.Audit.MetadataTable),
		)
		return metadata.NewDatabaseSource(db, cfg.Audit.MetadataTable), nil

	default:
		return metadata.NewFileSource(cfg.Audit.MetadataPath), nil
	}
}
