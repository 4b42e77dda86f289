package errors

import (
	"errors"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
)

// FromCreateSubscriptionError maps the provisioning error taxonomy to an
// AppError with conventional status semantics: plan-not-found -> 404,
// plan-not-allowed -> 403, missing-payment-method -> 422, unexpected -> 500.
// The unexpected cause stays internal; only a generic message reaches the
// caller.
func FromCreateSubscriptionError(err *billing.CreateSubscriptionError) *AppError {
	switch err.Kind {
	case billing.KindPlanNotFound:
		return NewNotFoundError(err.Error())
	case billing.KindPlanNotAllowed:
		return NewForbiddenError(err.Error())
	case billing.KindMissingPaymentMethod:
		return NewUnprocessableError(err.Error())
	default:
		return NewInternalError("an unexpected error occurred")
	}
}

// AsCreateSubscriptionError unwraps err into the domain taxonomy, or returns
// nil when err is not a provisioning error.
func AsCreateSubscriptionError(err error) *billing.CreateSubscriptionError {
	var csErr *billing.CreateSubscriptionError
	if errors.As(err, &csErr) {
		return csErr
	}
	return nil
}
