package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/persistence/models"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) billing.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// FindPlan looks up a plan by its public slug. A missing row is a normal
// outcome and reported as (nil, nil).
func (r *PlanRepositoryImpl) FindPlan(ctx context.Context, planID vo.PlanID) (*billing.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).Where("slug = ?", planID.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to query plan", "error", err, "plan_id", planID.String())
		return nil, fmt.Errorf("failed to query plan: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) toEntity(model *models.PlanModel) (*billing.Plan, error) {
	planID, err := vo.NewPlanID(model.Slug)
	if err != nil {
		return nil, fmt.Errorf("invalid plan slug in storage: %w", err)
	}
	return &billing.Plan{
		ID:                 planID,
		Name:               model.Name,
		MaxSeats:           model.MaxSeats,
		RequiresCardOnFile: model.RequiresCardOnFile,
	}, nil
}
