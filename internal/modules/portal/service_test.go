package portal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"loonbedrijf/internal/domain"
)

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) GetByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) ListByClientID(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

type mockOperationRepo struct {
	mock.Mock
}

func (m *mockOperationRepo) ListByClientID(ctx context.Context, clientID string) ([]domain.PrecisionOperation, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.PrecisionOperation), args.Error(1)
}

func TestPartitionOperations(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	ops := []domain.PrecisionOperation{
		{ID: "past", StartDate: now.AddDate(0, 0, -7)},
		{ID: "future", StartDate: now.AddDate(0, 0, 7)},
		{ID: "boundary", StartDate: now},
	}

	planned, completed := PartitionOperations(ops, now)

	// total and disjoint
	assert.Len(t, planned, 1)
	assert.Len(t, completed, 2)
	assert.Equal(t, "future", planned[0].ID)

	// start exactly at evaluation time counts as completed
	ids := []string{completed[0].ID, completed[1].ID}
	assert.Contains(t, ids, "boundary")
	assert.Contains(t, ids, "past")
}

func TestPartitionOperationsEmpty(t *testing.T) {
	planned, completed := PartitionOperations(nil, time.Now())
	assert.Empty(t, planned)
	assert.Empty(t, completed)
	assert.NotNil(t, planned, "empty lists serialize as [], not null")
	assert.NotNil(t, completed)
}

func TestOperationsReclassifyOverTime(t *testing.T) {
	ctx := context.Background()

	clients := new(mockClientRepo)
	invoices := new(mockInvoiceRepo)
	operations := new(mockOperationRepo)
	svc := NewService(clients, invoices, operations)

	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	client := &domain.Client{ID: "client-1", UserID: "user-1"}
	clients.On("GetByUserID", ctx, "user-1").Return(client, nil)
	operations.On("ListByClientID", ctx, "client-1").
		Return([]domain.PrecisionOperation{{ID: "op-1", StartDate: start}}, nil)

	// evaluated the day before the start date
	svc.now = func() time.Time { return start.AddDate(0, 0, -1) }
	overview, err := svc.Operations(ctx, "user-1")
	assert.NoError(t, err)
	assert.Len(t, overview.Planned, 1)
	assert.Empty(t, overview.Completed)

	// same data evaluated the day after
	svc.now = func() time.Time { return start.AddDate(0, 0, 1) }
	overview, err = svc.Operations(ctx, "user-1")
	assert.NoError(t, err)
	assert.Empty(t, overview.Planned)
	assert.Len(t, overview.Completed, 1)
}

func TestClientForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		clients := new(mockClientRepo)
		svc := NewService(clients, new(mockInvoiceRepo), new(mockOperationRepo))

		clients.On("GetByUserID", ctx, "nobody").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ClientForUser(ctx, "nobody")
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("found", func(t *testing.T) {
		clients := new(mockClientRepo)
		svc := NewService(clients, new(mockInvoiceRepo), new(mockOperationRepo))

		clients.On("GetByUserID", ctx, "user-1").
			Return(&domain.Client{ID: "client-1", CompanyName: "Maatschap De Vries"}, nil)

		client, err := svc.ClientForUser(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "Maatschap De Vries", client.CompanyName)
	})
}

func TestUpdateClient(t *testing.T) {
	ctx := context.Background()

	clients := new(mockClientRepo)
	svc := NewService(clients, new(mockInvoiceRepo), new(mockOperationRepo))

	clients.On("GetByUserID", ctx, "user-1").
		Return(&domain.Client{ID: "client-1", UserID: "user-1", CompanyName: "Oud BV"}, nil)
	clients.On("Update", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)

	updated, err := svc.UpdateClient(ctx, "user-1", UpdateClientRequest{
		CompanyName:   "Nieuw BV",
		ContactPerson: "Jan de Vries",
		Phone:         "+31 6 12345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Nieuw BV", updated.CompanyName)
	assert.Equal(t, "client-1", updated.ID)
	clients.AssertExpectations(t)
}

func TestInvoices(t *testing.T) {
	ctx := context.Background()

	clients := new(mockClientRepo)
	invoices := new(mockInvoiceRepo)
	svc := NewService(clients, invoices, new(mockOperationRepo))

	clients.On("GetByUserID", ctx, "user-1").Return(&domain.Client{ID: "client-1"}, nil)
	invoices.On("ListByClientID", ctx, "client-1").
		Return([]domain.Invoice{{ID: "inv-1", Status: domain.InvoicePending}}, nil)

	result, err := svc.Invoices(ctx, "user-1")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, domain.InvoicePending, result[0].Status)
}
