package analytics

import (
	"context"
	"time"

	"github.com/georgemunganga/venuehub-backend/internal/platform/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cache stores computed summaries. *cache.JSON satisfies it.
type Cache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// Recorder counts cache hits and misses. *metrics.Metrics satisfies it.
type Recorder interface {
	CacheHit()
	CacheMiss()
}

// Service serves dashboard summaries, reading through a cache when one is configured.
type Service interface {
	AdminSummary(ctx context.Context) (*AdminSummary, error)
	PartnerSummary(ctx context.Context, ownerID uuid.UUID) (*PartnerSummary, error)
}

type service struct {
	repo     Repository
	cache    Cache
	recorder Recorder
	ttl      time.Duration
	now      func() time.Time
}

// NewService creates the analytics service. cache and recorder may be nil.
func NewService(repo Repository, cache Cache, recorder Recorder, ttl time.Duration) Service {
	return &service{repo: repo, cache: cache, recorder: recorder, ttl: ttl, now: time.Now}
}

func (s *service) AdminSummary(ctx context.Context) (*AdminSummary, error) {
	var cached AdminSummary
	if s.lookup(ctx, "admin", &cached) {
		return &cached, nil
	}

	summary, err := s.repo.AdminSummary(ctx)
	if err != nil {
		return nil, err
	}
	summary.GeneratedAt = s.now().UTC()
	s.store(ctx, "admin", summary)
	return summary, nil
}

func (s *service) PartnerSummary(ctx context.Context, ownerID uuid.UUID) (*PartnerSummary, error) {
	key := "partner:" + ownerID.String()
	var cached PartnerSummary
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.repo.PartnerSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	summary.GeneratedAt = s.now().UTC()
	s.store(ctx, key, summary)
	return summary, nil
}

// lookup reports a cache hit. Cache failures count as misses.
func (s *service) lookup(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		logger.FromContext(ctx).Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
	}
	if s.recorder != nil {
		if ok {
			s.recorder.CacheHit()
		} else {
			s.recorder.CacheMiss()
		}
	}
	return ok
}

func (s *service) store(ctx context.Context, key string, v interface{}) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, v, s.ttl); err != nil {
		logger.FromContext(ctx).Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
