// Package billing contains the subscription provisioning domain: the
// identifier value types, the passive entity records, the closed
// CreateSubscription error taxonomy, and the three repository ports the
// provisioning workflow depends on.
package billing

import (
	"time"

	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
)

// Subscription is the durable record binding a tenant to a plan. It is
// created exactly once, by the subscription repository at insert time, and
// never mutated afterwards. The repository-assigned ID and CreatedAt are
// canonical since they reflect the durable record.
type Subscription struct {
	ID        vo.SubscriptionID
	TenantID  vo.TenantID
	PlanID    vo.PlanID
	CreatedAt time.Time
}

// CreateSubscriptionRequest is the validated input to the provisioning
// workflow. It is transient: constructed per call at the workflow boundary
// and never persisted directly.
type CreateSubscriptionRequest struct {
	TenantID vo.TenantID
	PlanID   vo.PlanID
}

// NewCreateSubscriptionRequest validates the raw identifier tokens and builds
// a request value.
func NewCreateSubscriptionRequest(tenantID, planID string) (CreateSubscriptionRequest, error) {
	tid, err := vo.NewTenantID(tenantID)
	if err != nil {
		return CreateSubscriptionRequest{}, err
	}
	pid, err := vo.NewPlanID(planID)
	if err != nil {
		return CreateSubscriptionRequest{}, err
	}
	return CreateSubscriptionRequest{TenantID: tid, PlanID: pid}, nil
}
