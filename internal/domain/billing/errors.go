package billing

import (
	"fmt"

	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
)

// CreateSubscriptionErrorKind enumerates the closed set of outcomes a
// provisioning attempt can fail with. Three kinds are deterministic business
// rejections safe to return to the caller in full detail; KindUnexpected
// covers any infrastructure failure, whose cause is kept for logging only.
type CreateSubscriptionErrorKind string

const (
	KindPlanNotFound         CreateSubscriptionErrorKind = "plan_not_found"
	KindPlanNotAllowed       CreateSubscriptionErrorKind = "plan_not_allowed"
	KindMissingPaymentMethod CreateSubscriptionErrorKind = "missing_payment_method"
	KindUnexpected           CreateSubscriptionErrorKind = "unexpected"
)

// CreateSubscriptionError is the typed failure result of the provisioning
// workflow. Each kind carries exactly the identifiers needed to render a
// precise message without re-querying state, so a transport layer can map it
// to a status response directly.
type CreateSubscriptionError struct {
	Kind     CreateSubscriptionErrorKind
	TenantID vo.TenantID
	PlanID   vo.PlanID

	cause error
}

// NewPlanNotFoundError reports that the requested plan does not exist.
func NewPlanNotFoundError(planID vo.PlanID) *CreateSubscriptionError {
	return &CreateSubscriptionError{Kind: KindPlanNotFound, PlanID: planID}
}

// NewPlanNotAllowedError reports that the authorization policy rejected the
// tenant/plan pairing.
func NewPlanNotAllowedError(tenantID vo.TenantID, planID vo.PlanID) *CreateSubscriptionError {
	return &CreateSubscriptionError{Kind: KindPlanNotAllowed, TenantID: tenantID, PlanID: planID}
}

// NewMissingPaymentMethodError reports that the plan requires a card on file
// but the tenant has no active payment method.
func NewMissingPaymentMethodError(tenantID vo.TenantID) *CreateSubscriptionError {
	return &CreateSubscriptionError{Kind: KindMissingPaymentMethod, TenantID: tenantID}
}

// NewUnexpectedError wraps an infrastructure failure from a port call. The
// cause is preserved for diagnostics and must never be exposed verbatim to
// the caller.
func NewUnexpectedError(cause error) *CreateSubscriptionError {
	return &CreateSubscriptionError{Kind: KindUnexpected, cause: cause}
}

func (e *CreateSubscriptionError) Error() string {
	switch e.Kind {
	case KindPlanNotFound:
		return fmt.Sprintf("plan %s does not exist", e.PlanID)
	case KindPlanNotAllowed:
		return fmt.Sprintf("tenant %s is not allowed on plan %s", e.TenantID, e.PlanID)
	case KindMissingPaymentMethod:
		return fmt.Sprintf("tenant %s has no active payment method", e.TenantID)
	default:
		return "an unexpected error occurred"
	}
}

// Unwrap exposes the infrastructure cause for logging chains. It is nil for
// business rejections.
func (e *CreateSubscriptionError) Unwrap() error {
	return e.cause
}
