// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so particle tables can be
// read from AWS S3 or a self-hosted MinIO instance instead of the local disk.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - StatObject: Checks that a table object exists before it is read.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
