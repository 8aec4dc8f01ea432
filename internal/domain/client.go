package domain

import "time"

// Client is a customer company in the portal. Exactly one portal login maps
// to a client row, looked up by UserID.
type Client struct {
	ID            string    `json:"id" gorm:"column:id;primaryKey"`
	UserID        string    `json:"user_id" gorm:"column:user_id;uniqueIndex"`
	CompanyName   string    `json:"company_name" gorm:"column:company_name"`
	ContactPerson string    `json:"contact_person" gorm:"column:contact_person"`
	Phone         string    `json:"phone,omitempty" gorm:"column:phone"`
	Address       string    `json:"address,omitempty" gorm:"column:address"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Client) TableName() string { return "clients" }
