package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"cupid_fragments/internal/domain"
)

type IngestionService struct {
	cupid domain.CupidClient
	repo  domain.PropertyRepository
	cache domain.Cache
}

func NewIngestionService(c domain.CupidClient, r domain.PropertyRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{cupid: c, repo: r, cache: cache}
}

// IngestProperty refreshes one stored profile from upstream. Known misses
// (404, 401/403) are recorded and evict cached fragments; they are not errors.
func (s *IngestionService) IngestProperty(ctx context.Context, id int64) error {
	payload, err := s.cupid.GetProperty(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.miss(ctx, id, 404, "not found")
			return nil
		case errors.Is(err, domain.ErrForbidden):
			s.miss(ctx, id, 403, "inactive")
			return nil
		default:
			return err
		}
	}

	p := mapProperty(payload)
	if p.ID == 0 {
		p.ID = id
	}
	if p.ID != id {
		log.Warn().Int64("id", id).Int64("payload_id", p.ID).Msg("upstream id mismatch, keeping requested id")
		p.ID = id
	}
	if p.Name == "" {
		// the header cannot render without a name; keep the old row
		s.miss(ctx, id, 422, "no name")
		return nil
	}

	if err := s.repo.UpsertProperty(ctx, p); err != nil {
		return fmt.Errorf("upsert property %d: %w", id, err)
	}
	s.evict(ctx, id)
	return nil
}

func (s *IngestionService) miss(ctx context.Context, id int64, status int, reason string) {
	if err := s.repo.LogMiss(ctx, id, status, reason); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("log miss failed")
	}
	// drop stale fragments so we don't keep serving an old snapshot
	s.evict(ctx, id)
}

func (s *IngestionService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DelPrefix(ctx, CachePrefix(id)); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("fragment cache eviction failed")
	}
}
