package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
	"github.com/ledgercloud/ledgercloud/internal/shared/errors"
)

type spyBillingProfileStore struct {
	err      error
	calls    int
	tenantID vo.TenantID
	customer string
	active   bool
}

func (s *spyBillingProfileStore) UpsertPaymentMethodStatus(_ context.Context, tenantID vo.TenantID, providerCustomerID string, active bool) error {
	s.calls++
	s.tenantID = tenantID
	s.customer = providerCustomerID
	s.active = active
	return s.err
}

type stubPaymentGateway struct {
	active bool
	err    error
}

func (g *stubPaymentGateway) PaymentMethodStatus(context.Context, string) (bool, error) {
	return g.active, g.err
}

func TestUpdatePaymentMethodStatus_Success(t *testing.T) {
	store := &spyBillingProfileStore{}
	gateway := &stubPaymentGateway{active: true}
	uc := NewUpdatePaymentMethodStatusUseCase(store, gateway, testLogger{})

	err := uc.Execute(context.Background(), UpdatePaymentMethodStatusCommand{
		TenantID:           "t1",
		ProviderCustomerID: "cus_abc123",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, "t1", store.tenantID.String())
	assert.Equal(t, "cus_abc123", store.customer)
	assert.True(t, store.active)
}

func TestUpdatePaymentMethodStatus_ProviderReportsInactive(t *testing.T) {
	store := &spyBillingProfileStore{}
	gateway := &stubPaymentGateway{active: false}
	uc := NewUpdatePaymentMethodStatusUseCase(store, gateway, testLogger{})

	err := uc.Execute(context.Background(), UpdatePaymentMethodStatusCommand{
		TenantID:           "t1",
		ProviderCustomerID: "cus_abc123",
	})

	require.NoError(t, err)
	assert.False(t, store.active)
}

func TestUpdatePaymentMethodStatus_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdatePaymentMethodStatusCommand
	}{
		{name: "missing tenant", cmd: UpdatePaymentMethodStatusCommand{ProviderCustomerID: "cus_x"}},
		{name: "missing customer", cmd: UpdatePaymentMethodStatusCommand{TenantID: "t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &spyBillingProfileStore{}
			uc := NewUpdatePaymentMethodStatusUseCase(store, &stubPaymentGateway{}, testLogger{})

			err := uc.Execute(context.Background(), tt.cmd)

			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, 0, store.calls)
		})
	}
}

func TestUpdatePaymentMethodStatus_GatewayFailure(t *testing.T) {
	store := &spyBillingProfileStore{}
	gateway := &stubPaymentGateway{err: fmt.Errorf("provider unavailable")}
	uc := NewUpdatePaymentMethodStatusUseCase(store, gateway, testLogger{})

	err := uc.Execute(context.Background(), UpdatePaymentMethodStatusCommand{
		TenantID:           "t1",
		ProviderCustomerID: "cus_abc123",
	})

	assert.Error(t, err)
	assert.Equal(t, 0, store.calls)
}

func TestUpdatePaymentMethodStatus_StoreFailure(t *testing.T) {
	store := &spyBillingProfileStore{err: fmt.Errorf("write failed")}
	gateway := &stubPaymentGateway{active: true}
	uc := NewUpdatePaymentMethodStatusUseCase(store, gateway, testLogger{})

	err := uc.Execute(context.Background(), UpdatePaymentMethodStatusCommand{
		TenantID:           "t1",
		ProviderCustomerID: "cus_abc123",
	})

	assert.Error(t, err)
}
