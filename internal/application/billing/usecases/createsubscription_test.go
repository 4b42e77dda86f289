package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
)

func newUseCase(
	plans *spyPlanRepository,
	profiles *spyBillingProfileRepository,
	subs *spySubscriptionRepository,
) *CreateSubscriptionUseCase {
	return NewCreateSubscriptionUseCase(plans, profiles, subs, billing.AllowAllAuthorizer{}, testLogger{})
}

func TestCreateSubscription_PaidPlanWithPaymentMethod(t *testing.T) {
	// scenario A: card-on-file plan, billing reports an active method
	plans := newSpyPlanRepository(proPlan(), freePlan())
	profiles := &spyBillingProfileRepository{hasPaymentMethod: true}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	sub, err := uc.Execute(context.Background(), mustRequest("t1", "pro"))

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "t1", sub.TenantID.String())
	assert.Equal(t, "pro", sub.PlanID.String())
	assert.NotEmpty(t, sub.ID.String())
	assert.Equal(t, 1, profiles.calls)
	assert.Equal(t, 1, subs.calls)
}

func TestCreateSubscription_PaidPlanWithoutPaymentMethod(t *testing.T) {
	// scenario B: same plan, no payment method on file
	plans := newSpyPlanRepository(proPlan(), freePlan())
	profiles := &spyBillingProfileRepository{hasPaymentMethod: false}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	sub, err := uc.Execute(context.Background(), mustRequest("t1", "pro"))

	assert.Nil(t, sub)
	var csErr *billing.CreateSubscriptionError
	require.ErrorAs(t, err, &csErr)
	assert.Equal(t, billing.KindMissingPaymentMethod, csErr.Kind)
	assert.Equal(t, "t1", csErr.TenantID.String())
	// the subscription port must never be reached
	assert.Equal(t, 0, subs.calls)
}

func TestCreateSubscription_FreePlanSkipsBillingCheck(t *testing.T) {
	// scenario C: requires_card_on_file=false, billing status is irrelevant
	plans := newSpyPlanRepository(proPlan(), freePlan())
	profiles := &spyBillingProfileRepository{hasPaymentMethod: false}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	sub, err := uc.Execute(context.Background(), mustRequest("t1", "free"))

	require.NoError(t, err)
	assert.Equal(t, "t1", sub.TenantID.String())
	assert.Equal(t, "free", sub.PlanID.String())
	// no billing-port call is made at all
	assert.Equal(t, 0, profiles.calls)
	assert.Equal(t, 1, subs.calls)
}

func TestCreateSubscription_PlanNotFound(t *testing.T) {
	// scenario D: unknown plan id is echoed back, regardless of tenant
	plans := newSpyPlanRepository(proPlan(), freePlan())
	profiles := &spyBillingProfileRepository{hasPaymentMethod: true}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	for _, tenant := range []string{"t1", "t2", "someone-else"} {
		sub, err := uc.Execute(context.Background(), mustRequest(tenant, "ghost"))

		assert.Nil(t, sub)
		var csErr *billing.CreateSubscriptionError
		require.ErrorAs(t, err, &csErr)
		assert.Equal(t, billing.KindPlanNotFound, csErr.Kind)
		assert.Equal(t, "ghost", csErr.PlanID.String())
	}
	assert.Equal(t, 0, profiles.calls)
	assert.Equal(t, 0, subs.calls)
}

func TestCreateSubscription_AuthorizerRejection(t *testing.T) {
	plans := newSpyPlanRepository(proPlan(), freePlan())
	profiles := &spyBillingProfileRepository{hasPaymentMethod: true}
	subs := &spySubscriptionRepository{}
	uc := NewCreateSubscriptionUseCase(plans, profiles, subs, denyAllAuthorizer{}, testLogger{})

	sub, err := uc.Execute(context.Background(), mustRequest("t1", "pro"))

	assert.Nil(t, sub)
	var csErr *billing.CreateSubscriptionError
	require.ErrorAs(t, err, &csErr)
	assert.Equal(t, billing.KindPlanNotAllowed, csErr.Kind)
	assert.Equal(t, "t1", csErr.TenantID.String())
	assert.Equal(t, "pro", csErr.PlanID.String())
	// authorization runs after plan resolution, before any billing check
	assert.Equal(t, 1, plans.calls)
	assert.Equal(t, 0, profiles.calls)
	assert.Equal(t, 0, subs.calls)
}

func TestCreateSubscription_PlanLookupFailure(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	plans := newSpyPlanRepository()
	plans.err = cause
	profiles := &spyBillingProfileRepository{hasPaymentMethod: true}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	sub, err := uc.Execute(context.Background(), mustRequest("t1", "pro"))

	assert.Nil(t, sub)
	var csErr *billing.CreateSubscriptionError
	require.ErrorAs(t, err, &csErr)
	assert.Equal(t, billing.KindUnexpected, csErr.Kind)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, 0, profiles.calls)
	assert.Equal(t, 0, subs.calls)
}

func TestCreateSubscription_BillingCheckFailure(t *testing.T) {
	cause := fmt.Errorf("query timeout")
	plans := newSpyPlanRepository(proPlan())
	profiles := &spyBillingProfileRepository{err: cause}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	sub, err := uc.Execute(context.Background(), mustRequest("t1", "pro"))

	assert.Nil(t, sub)
	var csErr *billing.CreateSubscriptionError
	require.ErrorAs(t, err, &csErr)
	assert.Equal(t, billing.KindUnexpected, csErr.Kind)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, 0, subs.calls)
}

func TestCreateSubscription_InsertFailure(t *testing.T) {
	cause := fmt.Errorf("duplicate key")
	plans := newSpyPlanRepository(freePlan())
	profiles := &spyBillingProfileRepository{}
	subs := &spySubscriptionRepository{err: cause}
	uc := newUseCase(plans, profiles, subs)

	sub, err := uc.Execute(context.Background(), mustRequest("t1", "free"))

	assert.Nil(t, sub)
	var csErr *billing.CreateSubscriptionError
	require.ErrorAs(t, err, &csErr)
	assert.Equal(t, billing.KindUnexpected, csErr.Kind)
	assert.True(t, errors.Is(err, cause))
}

func TestCreateSubscription_NotIdempotent(t *testing.T) {
	// two identical requests yield two distinct records; no deduplication
	plans := newSpyPlanRepository(freePlan())
	profiles := &spyBillingProfileRepository{}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	req := mustRequest("t1", "free")

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, subs.calls)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.TenantID, second.TenantID)
	assert.Equal(t, first.PlanID, second.PlanID)
}

func TestCreateSubscription_DistinctIDsAcrossInvocations(t *testing.T) {
	plans := newSpyPlanRepository(freePlan())
	profiles := &spyBillingProfileRepository{}
	subs := &spySubscriptionRepository{}
	uc := newUseCase(plans, profiles, subs)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sub, err := uc.Execute(context.Background(), mustRequest(fmt.Sprintf("t%d", i), "free"))
		require.NoError(t, err)
		assert.NotEmpty(t, sub.ID.String())
		assert.False(t, seen[sub.ID.String()], "duplicate subscription ID issued")
		seen[sub.ID.String()] = true
	}
}
