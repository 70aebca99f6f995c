package app_test

import (
	"context"
	"strings"

	"cupid_fragments/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	props    map[int64]domain.Property
	upserted []domain.Property
	misses   []string
	gets     int
}

func (f *fakeRepo) UpsertProperty(ctx context.Context, p domain.Property) error {
	f.upserted = append(f.upserted, p)
	return nil
}

func (f *fakeRepo) LogMiss(ctx context.Context, id int64, status int, reason string) error {
	f.misses = append(f.misses, reason)
	return nil
}

func (f *fakeRepo) GetProperty(ctx context.Context, id int64) (domain.Property, error) {
	f.gets++
	p, ok := f.props[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

type fakeCache struct {
	store   map[string]domain.Fragment
	evicted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*dst.(*domain.Fragment) = v
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.Fragment{}
	}
	c.store[key] = v.(domain.Fragment)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *fakeCache) DelPrefix(ctx context.Context, prefix string) error {
	c.evicted = append(c.evicted, prefix)
	for k := range c.store {
		if strings.HasPrefix(k, prefix) {
			delete(c.store, k)
		}
	}
	return nil
}

type fakeCupid struct {
	payload map[string]any
	err     error
}

func (f *fakeCupid) GetProperty(ctx context.Context, id int64) (map[string]any, error) {
	return f.payload, f.err
}
