package portal

import (
	"context"
	"errors"
	"time"

	"loonbedrijf/internal/domain"

	"gorm.io/gorm"
)

// Service backs the customer portal: company details, invoices and the
// planned/completed operations view, all scoped to the caller's client row.
type Service struct {
	clients    ClientRepositoryInterface
	invoices   InvoiceRepositoryInterface
	operations OperationRepositoryInterface
	now        func() time.Time
}

func NewService(
	clients ClientRepositoryInterface,
	invoices InvoiceRepositoryInterface,
	operations OperationRepositoryInterface,
) *Service {
	return &Service{
		clients:    clients,
		invoices:   invoices,
		operations: operations,
		now:        time.Now,
	}
}

// PartitionOperations splits operations into planned and completed
// relative to the evaluation time. The split is total and disjoint: an
// operation is planned iff its start date is strictly after now, completed
// otherwise. Classification is derived, never stored.
func PartitionOperations(ops []domain.PrecisionOperation, now time.Time) (planned, completed []domain.PrecisionOperation) {
	planned = make([]domain.PrecisionOperation, 0, len(ops))
	completed = make([]domain.PrecisionOperation, 0, len(ops))
	for _, op := range ops {
		if op.StartDate.After(now) {
			planned = append(planned, op)
		} else {
			completed = append(completed, op)
		}
	}
	return planned, completed
}

func (s *Service) ClientForUser(ctx context.Context, userID string) (*domain.Client, error) {
	client, err := s.clients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// UpdateClient stores new company details for the caller's own client row
// and returns the stored row, which replaces the client's local copy.
func (s *Service) UpdateClient(ctx context.Context, userID string, req UpdateClientRequest) (*domain.Client, error) {
	client, err := s.ClientForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	client.CompanyName = req.CompanyName
	client.ContactPerson = req.ContactPerson
	client.Phone = req.Phone
	client.Address = req.Address

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Service) Invoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	client, err := s.ClientForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.invoices.ListByClientID(ctx, client.ID)
}

func (s *Service) Operations(ctx context.Context, userID string) (*OperationsOverview, error) {
	client, err := s.ClientForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ops, err := s.operations.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	evaluatedAt := s.now()
	planned, completed := PartitionOperations(ops, evaluatedAt)

	return &OperationsOverview{
		Planned:     planned,
		Completed:   completed,
		EvaluatedAt: evaluatedAt,
	}, nil
}
