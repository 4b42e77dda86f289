package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/shared/id"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

// testLogger satisfies logger.Interface without producing output.
type testLogger struct{}

func (testLogger) Debug(string, ...any)                {}
func (testLogger) Info(string, ...any)                 {}
func (testLogger) Warn(string, ...any)                 {}
func (testLogger) Error(string, ...any)                {}
func (testLogger) Fatal(string, ...any)                {}
func (l testLogger) With(...any) logger.Interface      { return l }
func (l testLogger) Named(string) logger.Interface     { return l }
func (testLogger) Debugw(string, ...interface{})       {}
func (testLogger) Infow(string, ...interface{})        {}
func (testLogger) Warnw(string, ...interface{})        {}
func (testLogger) Errorw(string, ...interface{})       {}
func (testLogger) Fatalw(string, ...interface{})       {}

// spyPlanRepository serves plans from an in-memory catalog and counts calls.
type spyPlanRepository struct {
	plans map[string]billing.Plan
	err   error
	calls int
}

func newSpyPlanRepository(plans ...billing.Plan) *spyPlanRepository {
	catalog := make(map[string]billing.Plan, len(plans))
	for _, p := range plans {
		catalog[p.ID.String()] = p
	}
	return &spyPlanRepository{plans: catalog}
}

func (r *spyPlanRepository) FindPlan(_ context.Context, planID vo.PlanID) (*billing.Plan, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if p, ok := r.plans[planID.String()]; ok {
		return &p, nil
	}
	return nil, nil
}

// spyBillingProfileRepository reports a fixed payment method status and
// counts calls.
type spyBillingProfileRepository struct {
	hasPaymentMethod bool
	err              error
	calls            int
}

func (r *spyBillingProfileRepository) HasActivePaymentMethod(context.Context, vo.TenantID) (bool, error) {
	r.calls++
	if r.err != nil {
		return false, r.err
	}
	return r.hasPaymentMethod, nil
}

// spySubscriptionRepository issues fresh ids the way the real repository
// does and records every insert.
type spySubscriptionRepository struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (r *spySubscriptionRepository) InsertSubscription(_ context.Context, tenantID vo.TenantID, planID vo.PlanID) (*billing.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	sid, err := vo.NewSubscriptionID(id.MustGenerate(id.SubscriptionIDLength))
	if err != nil {
		return nil, fmt.Errorf("failed to build subscription ID: %w", err)
	}
	return &billing.Subscription{
		ID:       sid,
		TenantID: tenantID,
		PlanID:   planID,
	}, nil
}

// denyAllAuthorizer rejects every tenant/plan pairing.
type denyAllAuthorizer struct{}

func (denyAllAuthorizer) Allow(vo.TenantID, *billing.Plan) bool { return false }

func proPlan() billing.Plan {
	planID, _ := vo.NewPlanID("pro")
	return billing.Plan{ID: planID, Name: "Pro Plan", MaxSeats: 10, RequiresCardOnFile: true}
}

func freePlan() billing.Plan {
	planID, _ := vo.NewPlanID("free")
	return billing.Plan{ID: planID, Name: "Free Plan", MaxSeats: 1, RequiresCardOnFile: false}
}

func mustRequest(tenantID, planID string) billing.CreateSubscriptionRequest {
	req, err := billing.NewCreateSubscriptionRequest(tenantID, planID)
	if err != nil {
		panic(err)
	}
	return req
}
