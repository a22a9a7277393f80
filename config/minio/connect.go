package minio

import (
	"context"
	"fmt"
	"sync"

	"localization-srv/config"
	"localization-srv/pkg/minio"
)

var (
	mu       sync.Mutex
	instance minio.MinIO
)

// Connect returns the shared MinIO client. The first call also makes sure
// the report bucket exists.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("minio: create client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("minio: connect %s: %w", cfg.Endpoint, err)
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("minio: ensure bucket %q: %w", cfg.Bucket, err)
	}

	instance = client
	return instance, nil
}

// Disconnect drops the shared client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
