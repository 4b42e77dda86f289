package billing

import (
	"context"

	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
)

// PlanRepository looks up plans from the catalog store. Absence is a normal
// outcome, not a fault: a missing plan is reported as (nil, nil). A non-nil
// error always means an infrastructure failure.
type PlanRepository interface {
	FindPlan(ctx context.Context, planID vo.PlanID) (*Plan, error)
}

// BillingProfileRepository reads per-tenant payment-method status. A tenant
// with no billing profile row yields (false, nil): absence defaults to the
// conservative answer. A non-nil error always means an infrastructure
// failure.
type BillingProfileRepository interface {
	HasActivePaymentMethod(ctx context.Context, tenantID vo.TenantID) (bool, error)
}

// SubscriptionRepository durably records new subscriptions. The
// implementation generates the subscription's globally unique identifier and
// assigns its creation timestamp; no coordination across concurrent callers
// is required of the caller.
type SubscriptionRepository interface {
	InsertSubscription(ctx context.Context, tenantID vo.TenantID, planID vo.PlanID) (*Subscription, error)
}
