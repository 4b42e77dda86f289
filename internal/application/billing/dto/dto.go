// Package dto contains the API-facing representations of billing domain
// values and their converters.
package dto

import (
	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	"github.com/ledgercloud/ledgercloud/internal/shared/biztime"
)

// SubscriptionDTO is the wire representation of a subscription record.
type SubscriptionDTO struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	PlanID    string `json:"plan_id"`
	CreatedAt string `json:"created_at"`
}

// ToSubscriptionDTO converts a domain subscription for JSON serialization.
func ToSubscriptionDTO(sub *billing.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:        sub.ID.String(),
		TenantID:  sub.TenantID.String(),
		PlanID:    sub.PlanID.String(),
		CreatedAt: biztime.FormatRFC3339(sub.CreatedAt),
	}
}
