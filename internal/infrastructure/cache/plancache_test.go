package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) Fatal(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

// stubPlanRepository counts calls into the backing catalog.
type stubPlanRepository struct {
	plans map[string]*billing.Plan
	err   error
	calls int
}

func (s *stubPlanRepository) FindPlan(_ context.Context, planID vo.PlanID) (*billing.Plan, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.plans[planID.String()], nil
}

func proPlan() *billing.Plan {
	planID, _ := vo.NewPlanID("pro")
	return &billing.Plan{
		ID:                 planID,
		Name:               "Pro Plan",
		MaxSeats:           10,
		RequiresCardOnFile: true,
	}
}

func TestCachedPlanRepository_MissThenHit(t *testing.T) {
	client, _ := setupTestRedis(t)
	inner := &stubPlanRepository{plans: map[string]*billing.Plan{"pro": proPlan()}}
	repo := NewCachedPlanRepository(inner, client, 30, newNopLogger())

	planID, _ := vo.NewPlanID("pro")

	first, err := repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, inner.calls)

	second, err := repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, inner.calls, "second lookup should be served from cache")
}

func TestCachedPlanRepository_CachesAbsence(t *testing.T) {
	client, _ := setupTestRedis(t)
	inner := &stubPlanRepository{plans: map[string]*billing.Plan{}}
	repo := NewCachedPlanRepository(inner, client, 30, newNopLogger())

	planID, _ := vo.NewPlanID("ghost")

	plan, err := repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)
	assert.Nil(t, plan)
	assert.Equal(t, 1, inner.calls)

	// the null marker absorbs the second lookup
	plan, err = repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)
	assert.Nil(t, plan)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedPlanRepository_NullMarkerExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	inner := &stubPlanRepository{plans: map[string]*billing.Plan{}}
	repo := NewCachedPlanRepository(inner, client, 30, newNopLogger())

	planID, _ := vo.NewPlanID("ghost")

	_, err := repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)

	mr.FastForward(planNullMarkerTTL + time.Second)

	_, err = repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "expired marker should fall through to the repository")
}

func TestCachedPlanRepository_RedisDownFallsBack(t *testing.T) {
	client, mr := setupTestRedis(t)
	inner := &stubPlanRepository{plans: map[string]*billing.Plan{"pro": proPlan()}}
	repo := NewCachedPlanRepository(inner, client, 30, newNopLogger())

	mr.Close()

	planID, _ := vo.NewPlanID("pro")
	plan, err := repo.FindPlan(context.Background(), planID)

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "pro", plan.ID.String())
	assert.Equal(t, 1, inner.calls)
}

func TestCachedPlanRepository_InnerErrorNotCached(t *testing.T) {
	client, _ := setupTestRedis(t)
	boom := errors.New("catalog down")
	inner := &stubPlanRepository{err: boom}
	repo := NewCachedPlanRepository(inner, client, 30, newNopLogger())

	planID, _ := vo.NewPlanID("pro")

	_, err := repo.FindPlan(context.Background(), planID)
	require.ErrorIs(t, err, boom)

	_, err = repo.FindPlan(context.Background(), planID)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, inner.calls, "failures must not be remembered")
}

func TestCachedPlanRepository_Invalidate(t *testing.T) {
	client, _ := setupTestRedis(t)
	inner := &stubPlanRepository{plans: map[string]*billing.Plan{"pro": proPlan()}}
	repo := NewCachedPlanRepository(inner, client, 30, newNopLogger())

	planID, _ := vo.NewPlanID("pro")

	_, err := repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)
	require.NoError(t, repo.Invalidate(context.Background(), planID))

	_, err = repo.FindPlan(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
