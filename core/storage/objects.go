package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// LatestObject returns the key of the most recently modified object under
// prefix. The crawler uploads one timestamped export per run, so the newest
// object under the export prefix is the current export.
func LatestObject(ctx context.Context, client Client, bucket, prefix string) (string, error) {
	var latest minio.ObjectInfo
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return "", fmt.Errorf("failed to list export objects: %w", obj.Err)
		}
		if obj.LastModified.After(latest.LastModified) {
			latest = obj
		}
	}

	if latest.Key == "" {
		return "", fmt.Errorf("no export objects under prefix %q in bucket %q", prefix, bucket)
	}
	return latest.Key, nil
}
