package checks

import (
	"context"
	"fmt"

	"pss-assistant/core/entity"
	"pss-assistant/core/gameapi"
	"pss-assistant/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckSnapshots returns the snapshot objects missing from the bucket, one
// per endpoint, as object keys.
func CheckSnapshots(ctx context.Context, client storage.Client, bucket, prefix string, endpoints []entity.Endpoint) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, endpoint := range endpoints {
		key := gameapi.SnapshotKey(prefix, endpoint)
		_, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
		if err == nil {
			continue
		}
		if !storage.IsNotFound(err) {
			return nil, fmt.Errorf("failed to stat %s: %w", key, err)
		}
		missing = append(missing, key)
	}

	return missing, nil
}
