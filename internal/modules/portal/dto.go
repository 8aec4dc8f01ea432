package portal

import (
	"time"

	"loonbedrijf/internal/domain"
)

type UpdateClientRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// OperationsOverview is the partitioned view of a client's operations.
// EvaluatedAt is the wall-clock instant the split was computed against; a
// page rendered before midnight and refetched after may legitimately move
// an operation between the two lists without any data change.
type OperationsOverview struct {
	Planned     []domain.PrecisionOperation `json:"planned"`
	Completed   []domain.PrecisionOperation `json:"completed"`
	EvaluatedAt time.Time                   `json:"evaluated_at"`
}
