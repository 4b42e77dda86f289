package usecases

import (
	"context"
	"fmt"

	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/shared/errors"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
	"github.com/ledgercloud/ledgercloud/internal/shared/utils"
)

type UpdatePaymentMethodStatusCommand struct {
	TenantID           string `validate:"required"`
	ProviderCustomerID string `validate:"required"`
}

// UpdatePaymentMethodStatusUseCase reconciles a tenant's billing profile
// after a payment-provider webhook. The event payload is treated as a hint
// only: the current status is confirmed with the provider before the profile
// row is written.
type UpdatePaymentMethodStatusUseCase struct {
	profiles BillingProfileStore
	gateway  PaymentGateway
	logger   logger.Interface
}

func NewUpdatePaymentMethodStatusUseCase(
	profiles BillingProfileStore,
	gateway PaymentGateway,
	logger logger.Interface,
) *UpdatePaymentMethodStatusUseCase {
	return &UpdatePaymentMethodStatusUseCase{
		profiles: profiles,
		gateway:  gateway,
		logger:   logger,
	}
}

func (uc *UpdatePaymentMethodStatusUseCase) Execute(ctx context.Context, cmd UpdatePaymentMethodStatusCommand) error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return err
	}
	tenantID, err := vo.NewTenantID(cmd.TenantID)
	if err != nil {
		return errors.NewValidationError("tenant ID is required")
	}

	active, err := uc.gateway.PaymentMethodStatus(ctx, cmd.ProviderCustomerID)
	if err != nil {
		uc.logger.Errorw("failed to confirm payment method status with provider",
			"error", err,
			"tenant_id", tenantID.String(),
			"customer_id", cmd.ProviderCustomerID,
		)
		return fmt.Errorf("failed to confirm payment method status: %w", err)
	}

	if err := uc.profiles.UpsertPaymentMethodStatus(ctx, tenantID, cmd.ProviderCustomerID, active); err != nil {
		uc.logger.Errorw("failed to upsert billing profile", "error", err, "tenant_id", tenantID.String())
		return fmt.Errorf("failed to update billing profile: %w", err)
	}

	uc.logger.Infow("billing profile updated",
		"tenant_id", tenantID.String(),
		"customer_id", cmd.ProviderCustomerID,
		"has_active_payment_method", active,
	)

	return nil
}
