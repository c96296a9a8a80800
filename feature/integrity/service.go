package integrity

import (
	"context"

	"jalsetu/core/records"
	"jalsetu/core/storage"
	"jalsetu/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. db may be nil when the record store is unreachable.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		db:     db,
	}
}

// CheckArchive inspects the snapshot archive.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	return checks.CheckArchive(ctx, s.client, s.bucket, s.prefix)
}

// FixArchive creates the missing archive parts.
func (s *Service) FixArchive(ctx context.Context, missing []string) error {
	return checks.FixArchive(ctx, s.client, s.bucket, s.prefix, s.logger, missing)
}

// CheckSchema compares the record store tables with the record models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, records.Models())
}
