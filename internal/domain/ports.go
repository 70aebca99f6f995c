package domain

import "context"

type PropertyRepository interface {
	// Write paths
	UpsertProperty(ctx context.Context, p Property) error
	LogMiss(ctx context.Context, id int64, status int, reason string) error

	// Read paths
	GetProperty(ctx context.Context, id int64) (Property, error)
}

type CupidClient interface {
	GetProperty(ctx context.Context, id int64) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	DelPrefix(ctx context.Context, prefix string) error
}
