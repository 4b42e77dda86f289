package models

import (
	"time"
)

// BillingProfileModel represents the database persistence model for
// per-tenant payment-method status, kept in sync with the external payment
// provider. At most one row exists per tenant.
type BillingProfileModel struct {
	ID                        uint    `gorm:"primarykey"`
	TenantID                  string  `gorm:"uniqueIndex;not null;size:64"`
	HasActivePaymentMethod    bool    `gorm:"not null;default:false"`
	PaymentProviderCustomerID *string `gorm:"size:64"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// TableName specifies the table name for GORM
func (BillingProfileModel) TableName() string {
	return "billing_profiles"
}
