package models

import (
	"time"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. SID is the Stripe-style public identifier (sub_xxx)
// generated at insert time; tenant and plan are referenced by their opaque
// string tokens. No update or delete path exists for this table.
type SubscriptionModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50"`
	TenantID  string `gorm:"not null;size:64;index:idx_tenant_subscription"`
	PlanID    string `gorm:"not null;size:64;index:idx_plan_subscription"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
