package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgercloud/ledgercloud/internal/application/billing/usecases"
	"github.com/ledgercloud/ledgercloud/internal/shared/errors"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
	"github.com/ledgercloud/ledgercloud/internal/shared/utils"
)

// Webhook event types emitted by the payment provider.
const (
	EventPaymentMethodAttached = "payment_method.attached"
	EventPaymentMethodDetached = "payment_method.detached"
)

const webhookSignatureHeader = "X-Webhook-Secret"

// BillingWebhookHandler receives payment provider webhook events and keeps
// billing profiles in sync with the provider's view of the tenant.
type BillingWebhookHandler struct {
	updateStatusUC updatePaymentMethodStatusUseCase
	webhookSecret  string
	logger         logger.Interface
}

func NewBillingWebhookHandler(updateStatusUC updatePaymentMethodStatusUseCase, webhookSecret string, logger logger.Interface) *BillingWebhookHandler {
	return &BillingWebhookHandler{
		updateStatusUC: updateStatusUC,
		webhookSecret:  webhookSecret,
		logger:         logger,
	}
}

type BillingWebhookRequest struct {
	Type       string `json:"type" binding:"required"`
	TenantID   string `json:"tenant_id" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
}

// HandleEvent handles POST /api/webhooks/payment
func (h *BillingWebhookHandler) HandleEvent(c *gin.Context) {
	if h.webhookSecret != "" {
		got := c.GetHeader(webhookSignatureHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.webhookSecret)) != 1 {
			h.logger.Warnw("webhook rejected: bad signature", "remote_addr", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid webhook signature")
			return
		}
	}

	var req BillingWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid webhook payload", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid webhook payload", err.Error()))
		return
	}

	switch req.Type {
	case EventPaymentMethodAttached, EventPaymentMethodDetached:
	default:
		// unknown events are acknowledged so the provider stops retrying
		h.logger.Debugw("ignoring webhook event", "type", req.Type)
		utils.SuccessResponse(c, http.StatusOK, "event ignored", nil)
		return
	}

	cmd := usecases.UpdatePaymentMethodStatusCommand{
		TenantID:           req.TenantID,
		ProviderCustomerID: req.CustomerID,
	}

	if err := h.updateStatusUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event processed", nil)
}
