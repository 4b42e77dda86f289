package billing

import (
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
)

// BillingProfile is the per-tenant payment-method status tracked by the
// external payment system. The provisioning workflow only reads
// HasActivePaymentMethod through the billing profile port; it never
// constructs or persists a profile. A tenant with no profile row is treated
// as having no active payment method.
type BillingProfile struct {
	TenantID                  vo.TenantID
	HasActivePaymentMethod    bool
	PaymentProviderCustomerID *string
}
