// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so import runs can pull crawler exports
// straight from the bucket the crawler uploads them to, instead of requiring
// a local file. The abstraction supports both AWS S3 and self-hosted MinIO
// instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the export bucket.
//   - GetObject: Retrieves an export as a stream.
//   - ListObjects: Lists exports in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	rc, err := client.GetObject(ctx, "exports", "focode_export.jsonl", minio.GetObjectOptions{})
package storage
