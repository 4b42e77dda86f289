package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/persistence/models"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

// BillingProfileRepositoryImpl serves both sides of the billing profile
// concern: the read-only port consumed by the provisioning workflow and the
// write-side store fed by payment-provider webhooks.
type BillingProfileRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBillingProfileRepository(db *gorm.DB, logger logger.Interface) *BillingProfileRepositoryImpl {
	return &BillingProfileRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// HasActivePaymentMethod reports whether the tenant has an active payment
// method on file. A tenant with no profile row yields (false, nil): absence
// defaults to the conservative answer.
func (r *BillingProfileRepositoryImpl) HasActivePaymentMethod(ctx context.Context, tenantID vo.TenantID) (bool, error) {
	var model models.BillingProfileModel
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		r.logger.Errorw("failed to query billing profile", "error", err, "tenant_id", tenantID.String())
		return false, fmt.Errorf("failed to query billing profile: %w", err)
	}

	return model.HasActivePaymentMethod, nil
}

// UpsertPaymentMethodStatus writes the tenant's current payment-method
// status, creating the profile row on first sight of the tenant.
func (r *BillingProfileRepositoryImpl) UpsertPaymentMethodStatus(ctx context.Context, tenantID vo.TenantID, providerCustomerID string, active bool) error {
	model := models.BillingProfileModel{
		TenantID:                  tenantID.String(),
		HasActivePaymentMethod:    active,
		PaymentProviderCustomerID: &providerCustomerID,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"has_active_payment_method", "payment_provider_customer_id", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert billing profile", "error", err, "tenant_id", tenantID.String())
		return fmt.Errorf("failed to upsert billing profile: %w", err)
	}

	return nil
}
