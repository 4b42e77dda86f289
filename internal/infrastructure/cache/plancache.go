package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

const (
	planKeyPrefix      = "plan:catalog:"
	defaultPlanTTL     = 30 * time.Minute
	planTTLJitter      = 10 * time.Minute // TTL range: 30-40 min (anti-stampede)
	planNullMarkerTTL  = 2 * time.Minute  // Short TTL for not-found markers (anti-penetration)
	planNullMarkerBody = "_null"
)

// cachedPlan is the wire form of a plan catalog entry in Redis.
type cachedPlan struct {
	Slug               string `json:"slug"`
	Name               string `json:"name"`
	MaxSeats           uint32 `json:"max_seats"`
	RequiresCardOnFile bool   `json:"requires_card_on_file"`
}

// CachedPlanRepository is a read-through cache in front of a plan
// repository. Plan catalog rows change rarely, so lookups are served from
// Redis and fall back to the inner repository on a miss. Cache failures
// degrade to the inner repository rather than failing the lookup.
type CachedPlanRepository struct {
	inner  billing.PlanRepository
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewCachedPlanRepository wraps inner with a Redis read-through cache.
// ttlMinutes <= 0 selects the default lifetime.
func NewCachedPlanRepository(inner billing.PlanRepository, client *redis.Client, ttlMinutes int, logger logger.Interface) *CachedPlanRepository {
	ttl := defaultPlanTTL
	if ttlMinutes > 0 {
		ttl = time.Duration(ttlMinutes) * time.Minute
	}
	return &CachedPlanRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedPlanRepository) key(planID vo.PlanID) string {
	return planKeyPrefix + planID.String()
}

// FindPlan serves the plan from cache when present, consulting the inner
// repository on a miss and remembering the answer, including confirmed
// absence.
func (c *CachedPlanRepository) FindPlan(ctx context.Context, planID vo.PlanID) (*billing.Plan, error) {
	key := c.key(planID)

	payload, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if payload == planNullMarkerBody {
			return nil, nil
		}
		var cached cachedPlan
		if jsonErr := json.Unmarshal([]byte(payload), &cached); jsonErr == nil {
			return c.toEntity(&cached)
		}
		// corrupt entry, fall through to the inner repository
		c.logger.Warnw("discarding unreadable plan cache entry", "key", key)
	case err != redis.Nil:
		c.logger.Warnw("plan cache read failed, falling back to repository", "error", err, "plan_id", planID.String())
	}

	plan, err := c.inner.FindPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, plan)
	return plan, nil
}

func (c *CachedPlanRepository) store(ctx context.Context, key string, plan *billing.Plan) {
	if plan == nil {
		if err := c.client.Set(ctx, key, planNullMarkerBody, planNullMarkerTTL).Err(); err != nil {
			c.logger.Warnw("failed to cache plan null marker", "error", err, "key", key)
		}
		return
	}

	payload, err := json.Marshal(cachedPlan{
		Slug:               plan.ID.String(),
		Name:               plan.Name,
		MaxSeats:           plan.MaxSeats,
		RequiresCardOnFile: plan.RequiresCardOnFile,
	})
	if err != nil {
		c.logger.Warnw("failed to encode plan for cache", "error", err, "key", key)
		return
	}

	jitter := time.Duration(rand.Int64N(int64(planTTLJitter)))
	if err := c.client.Set(ctx, key, payload, c.ttl+jitter).Err(); err != nil {
		c.logger.Warnw("failed to cache plan", "error", err, "key", key)
	}
}

// Invalidate drops the cached entry for a plan, forcing the next lookup to
// hit the inner repository. Called after catalog updates.
func (c *CachedPlanRepository) Invalidate(ctx context.Context, planID vo.PlanID) error {
	if err := c.client.Del(ctx, c.key(planID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate plan cache: %w", err)
	}
	return nil
}

func (c *CachedPlanRepository) toEntity(cached *cachedPlan) (*billing.Plan, error) {
	planID, err := vo.NewPlanID(cached.Slug)
	if err != nil {
		return nil, fmt.Errorf("invalid plan slug in cache: %w", err)
	}
	return &billing.Plan{
		ID:                 planID,
		Name:               cached.Name,
		MaxSeats:           cached.MaxSeats,
		RequiresCardOnFile: cached.RequiresCardOnFile,
	}, nil
}
