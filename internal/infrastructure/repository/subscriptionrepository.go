package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/persistence/models"
	"github.com/ledgercloud/ledgercloud/internal/shared/id"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) billing.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// InsertSubscription durably records a new subscription. The identifier is a
// fresh sub_-prefixed random token, unique without cross-caller
// coordination; the row's creation timestamp is authoritative for the
// returned record.
func (r *SubscriptionRepositoryImpl) InsertSubscription(ctx context.Context, tenantID vo.TenantID, planID vo.PlanID) (*billing.Subscription, error) {
	sid, err := id.GenerateWithPrefix(id.PrefixSubscription, id.SubscriptionIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription ID: %w", err)
	}

	model := models.SubscriptionModel{
		SID:      sid,
		TenantID: tenantID.String(),
		PlanID:   planID.String(),
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.logger.Errorw("failed to insert subscription", "error", err,
			"tenant_id", tenantID.String(),
			"plan_id", planID.String(),
		)
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}

	r.logger.Infow("subscription persisted", "subscription_id", sid, "tenant_id", tenantID.String())

	return r.toEntity(&model, tenantID, planID)
}

func (r *SubscriptionRepositoryImpl) toEntity(model *models.SubscriptionModel, tenantID vo.TenantID, planID vo.PlanID) (*billing.Subscription, error) {
	subID, err := vo.NewSubscriptionID(model.SID)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription ID in storage: %w", err)
	}
	return &billing.Subscription{
		ID:        subID,
		TenantID:  tenantID,
		PlanID:    planID,
		CreatedAt: model.CreatedAt.UTC(),
	}, nil
}
