package usecases

import (
	"context"

	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
)

// BillingProfileStore records payment-method status changes pushed by the
// payment provider. It is a write-side companion to the read-only
// billing.BillingProfileRepository port; the provisioning workflow itself
// never writes profiles.
type BillingProfileStore interface {
	UpsertPaymentMethodStatus(ctx context.Context, tenantID vo.TenantID, providerCustomerID string, active bool) error
}

// PaymentGateway is the outbound payment-provider surface the application
// layer needs: confirming what the provider currently knows about a
// customer's payment methods.
type PaymentGateway interface {
	PaymentMethodStatus(ctx context.Context, providerCustomerID string) (bool, error)
}
