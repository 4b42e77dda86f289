package handlers

import (
	"context"

	"github.com/ledgercloud/ledgercloud/internal/application/billing/usecases"
	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, req billing.CreateSubscriptionRequest) (*billing.Subscription, error)
}

// Use case interfaces for BillingWebhookHandler

type updatePaymentMethodStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePaymentMethodStatusCommand) error
}
