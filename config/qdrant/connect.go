package qdrant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"localization-srv/config"
	"localization-srv/pkg/qdrant"
	"localization-srv/pkg/voyage"
)

var (
	mu       sync.Mutex
	instance qdrant.IQdrant
)

// Connect dials Qdrant and creates the TM collection sized for Voyage vectors.
func Connect(ctx context.Context, cfg config.QdrantConfig) (qdrant.IQdrant, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := qdrant.NewQdrant(qdrant.QdrantConfig{
		Host:    cfg.Host,
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: connect %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	if err := client.EnsureCollection(ctx, cfg.Collection, uint64(voyage.Dimensions)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("qdrant: ensure collection %q: %w", cfg.Collection, err)
	}

	instance = client
	return instance, nil
}

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
