package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"jalsetu/core/snapshot"
	"jalsetu/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Missing archive parts reported by CheckArchive.
const (
	MissingBucket = "bucket"
	MissingPrefix = "prefix"
)

// ArchiveReport describes the snapshot archive in object storage.
type ArchiveReport struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix"`
	// Missing lists absent parts: "bucket" and/or "prefix".
	Missing []string `json:"missing"`
	// Snapshots counts archived snapshot objects.
	Snapshots int `json:"snapshots"`
	// Unreadable lists snapshot objects that do not decode or name the wrong tenant.
	Unreadable []string `json:"unreadable"`
}

// OK reports whether the archive is complete and every snapshot is readable.
func (r *ArchiveReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Unreadable) == 0
}

// CheckArchive verifies the bucket and prefix exist and that archived snapshots decode.
func CheckArchive(ctx context.Context, client storage.Client, bucket, prefix string) (*ArchiveReport, error) {
	report := &ArchiveReport{
		Bucket:     bucket,
		Prefix:     prefix,
		Missing:    []string{},
		Unreadable: []string{},
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		report.Missing = append(report.Missing, MissingBucket, MissingPrefix)
		return report, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    folder(prefix),
		Recursive: false,
		MaxKeys:   1,
	}
	found := false
	for range client.ListObjects(ctx, bucket, opts) {
		found = true
		break
	}
	if !found {
		report.Missing = append(report.Missing, MissingPrefix)
		return report, nil
	}

	count, unreadable, err := scanSnapshots(ctx, client, bucket, prefix)
	if err != nil {
		return nil, err
	}
	report.Snapshots = count
	report.Unreadable = append(report.Unreadable, unreadable...)
	return report, nil
}

// FixArchive creates the missing bucket and prefix folder.
func FixArchive(ctx context.Context, client storage.Client, bucket, prefix string, logger *zap.Logger, missing []string) error {
	for _, part := range missing {
		switch part {
		case MissingBucket:
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
				return err
			}
			logger.Info("Created missing bucket", zap.String("bucket", bucket))
		case MissingPrefix:
			_, err := client.PutObject(ctx, bucket, folder(prefix), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
			if err != nil {
				logger.Error("Failed to create folder", zap.String("folder", prefix), zap.Error(err))
				return err
			}
			logger.Info("Created missing folder", zap.String("folder", prefix))
		}
	}
	return nil
}

// scanSnapshots decodes every archived snapshot under prefix.
func scanSnapshots(ctx context.Context, client storage.Client, bucket, prefix string) (int, []string, error) {
	var (
		count      int
		unreadable []string
	)

	opts := minio.ListObjectsOptions{Prefix: folder(prefix), Recursive: true}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return 0, nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		count++

		var snap snapshot.Snapshot
		if err := storage.GetJSON(ctx, client, bucket, obj.Key, &snap); err != nil {
			unreadable = append(unreadable, obj.Key)
			continue
		}
		if snap.TenantID != strings.TrimSuffix(path.Base(obj.Key), ".json") {
			unreadable = append(unreadable, obj.Key)
		}
	}

	return count, unreadable, nil
}

func folder(prefix string) string {
	if strings.HasSuffix(prefix, "/") {
		return prefix
	}
	return prefix + "/"
}
