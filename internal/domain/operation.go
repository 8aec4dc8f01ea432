package domain

import "time"

// PrecisionOperation is a scheduled or executed piece of field work.
// There is no stored planned/completed status: classification is derived by
// comparing StartDate to an evaluation time (see portal.PartitionOperations).
type PrecisionOperation struct {
	ID            string            `json:"id" gorm:"column:id;primaryKey"`
	ClientID      string            `json:"client_id" gorm:"column:client_id;index"`
	OperationType string            `json:"operation_type" gorm:"column:operation_type"`
	Location      string            `json:"location" gorm:"column:location"`
	StartDate     time.Time         `json:"start_date" gorm:"column:start_date"`
	EndDate       *time.Time        `json:"end_date,omitempty" gorm:"column:end_date"`
	EquipmentUsed []string          `json:"equipment_used" gorm:"column:equipment_used;serializer:json"`
	AreaCovered   *float64          `json:"area_covered,omitempty" gorm:"column:area_covered"`
	Notes         string            `json:"notes,omitempty" gorm:"column:notes"`
	Metrics       map[string]string `json:"metrics,omitempty" gorm:"column:metrics;serializer:json"`
	CreatedAt     time.Time         `json:"created_at" gorm:"column:created_at"`
}

func (PrecisionOperation) TableName() string { return "precision_operations" }
