package cmd

import (
	"fmt"

	"jalsetu/core/config"
	"jalsetu/core/database"
	"jalsetu/core/logger"
	"jalsetu/core/records"
	"jalsetu/core/snapshot"
	"jalsetu/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the collaborators every command needs.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  *records.Store
	client storage.Client
	loader *snapshot.Loader
}

// bootstrap loads configuration and wires the record store, archive and snapshot loader.
// The database and object storage are optional unless requireDB is set; without them
// snapshots degrade to archived or empty collections.
func bootstrap(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Info("Connected to record store", zap.String("driver", cfg.Database.Driver))

		if cfg.Database.AutoMigrate {
			if err := records.Migrate(conn); err != nil {
				return nil, err
			}
			logg.Info("Record tables migrated")
		}
	}

	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Snapshot archive unavailable", zap.Error(err))
	} else {
		rt.client = client
	}

	rt.store = records.NewStore(rt.db, logg)
	rt.loader = snapshot.NewLoader(rt.store, rt.client, cfg.Storage.Bucket, cfg.Snapshot, logg)
	return rt, nil
}
