// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface used to archive tenant
// record snapshots. Archived snapshots are the fallback the snapshot loader uses
// when the record store cannot be reached. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - PutJSON: Marshals a value and uploads it with a JSON content type.
//   - GetJSON: Downloads and decodes a JSON object, mapping NoSuchKey to ErrObjectNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.PutJSON(ctx, client, "jalsetu", "snapshots/LGD-123.json", snap)
package storage
