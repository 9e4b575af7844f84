package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/mocks"
	"github.com/agroflow/agroflow-api/internal/services"
)

func TestInvoiceService_MarkOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	organizationID := uuid.New()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		MarkInvoicesOverdue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.MarkInvoicesOverdueParams) ([]uuid.UUID, error) {
			// The sweep only touches the caller's organization.
			assert.Equal(t, organizationID, arg.OrganizationID)
			return []uuid.UUID{uuid.New()}, nil
		})

	service := services.NewInvoiceService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
	count, err := service.MarkOverdue(context.Background(), organizationID, time.Now())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
