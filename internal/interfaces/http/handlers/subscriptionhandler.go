package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgercloud/ledgercloud/internal/application/billing/dto"
	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	"github.com/ledgercloud/ledgercloud/internal/shared/errors"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
	"github.com/ledgercloud/ledgercloud/internal/shared/utils"
)

// SubscriptionHandler exposes subscription provisioning over HTTP.
type SubscriptionHandler struct {
	createSubscriptionUC createSubscriptionUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(createSubscriptionUC createSubscriptionUseCase, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC: createSubscriptionUC,
		logger:               logger,
	}
}

type CreateSubscriptionRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
	PlanID   string `json:"plan_id" binding:"required"`
}

// CreateSubscription provisions a subscription for a tenant on a plan.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	createReq, err := billing.NewCreateSubscriptionRequest(req.TenantID, req.PlanID)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	sub, err := h.createSubscriptionUC.Execute(c.Request.Context(), createReq)
	if err != nil {
		if subErr := errors.AsCreateSubscriptionError(err); subErr != nil {
			utils.ErrorResponseWithError(c, errors.FromCreateSubscriptionError(subErr))
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToSubscriptionDTO(sub), "Subscription created successfully")
}
