package usecases

import (
	"context"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

// CreateSubscriptionUseCase orchestrates subscription provisioning: it
// validates every precondition against the injected ports before durably
// recording a new subscription. It holds no mutable state; any number of
// invocations may run concurrently over the shared ports.
type CreateSubscriptionUseCase struct {
	plans           billing.PlanRepository
	billingProfiles billing.BillingProfileRepository
	subscriptions   billing.SubscriptionRepository
	authorizer      billing.TenantPlanAuthorizer
	logger          logger.Interface
}

func NewCreateSubscriptionUseCase(
	plans billing.PlanRepository,
	billingProfiles billing.BillingProfileRepository,
	subscriptions billing.SubscriptionRepository,
	authorizer billing.TenantPlanAuthorizer,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		plans:           plans,
		billingProfiles: billingProfiles,
		subscriptions:   subscriptions,
		authorizer:      authorizer,
		logger:          logger,
	}
}

// Execute runs the provisioning sequence, strictly in order and
// short-circuiting on the first failure:
//
//  1. resolve the plan, rejecting unknown plan ids;
//  2. evaluate the tenant/plan authorization policy;
//  3. when the plan requires a card on file, check the tenant's payment
//     method status (skipped entirely otherwise);
//  4. insert the subscription; the repository-assigned id and timestamp are
//     authoritative.
//
// Steps 1-3 are read-only; step 4 is the only mutation. Each port is called
// exactly once per invocation, with no retries and no compensation across
// the stores. Every returned error is a *billing.CreateSubscriptionError;
// infrastructure failures are folded into its unexpected kind at the call
// site so each fallibility point stays visible here.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, req billing.CreateSubscriptionRequest) (*billing.Subscription, error) {
	plan, err := uc.plans.FindPlan(ctx, req.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to look up plan", "error", err, "plan_id", req.PlanID.String())
		return nil, billing.NewUnexpectedError(err)
	}
	if plan == nil {
		uc.logger.Warnw("plan not found", "plan_id", req.PlanID.String(), "tenant_id", req.TenantID.String())
		return nil, billing.NewPlanNotFoundError(req.PlanID)
	}

	if !uc.authorizer.Allow(req.TenantID, plan) {
		uc.logger.Warnw("tenant not allowed on plan",
			"tenant_id", req.TenantID.String(),
			"plan_id", plan.ID.String(),
		)
		return nil, billing.NewPlanNotAllowedError(req.TenantID, plan.ID)
	}

	if plan.RequiresCardOnFile {
		hasPayment, err := uc.billingProfiles.HasActivePaymentMethod(ctx, req.TenantID)
		if err != nil {
			uc.logger.Errorw("failed to check payment method status", "error", err, "tenant_id", req.TenantID.String())
			return nil, billing.NewUnexpectedError(err)
		}
		if !hasPayment {
			uc.logger.Warnw("tenant has no active payment method",
				"tenant_id", req.TenantID.String(),
				"plan_id", plan.ID.String(),
			)
			return nil, billing.NewMissingPaymentMethodError(req.TenantID)
		}
	}

	sub, err := uc.subscriptions.InsertSubscription(ctx, req.TenantID, req.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to insert subscription", "error", err,
			"tenant_id", req.TenantID.String(),
			"plan_id", req.PlanID.String(),
		)
		return nil, billing.NewUnexpectedError(err)
	}

	uc.logger.Infow("subscription created successfully",
		"subscription_id", sub.ID.String(),
		"tenant_id", sub.TenantID.String(),
		"plan_id", sub.PlanID.String(),
	)

	return sub, nil
}
