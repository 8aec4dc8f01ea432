package domain

import "time"

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is read-only from the application's perspective: rows are loaded
// into the portal but never created or mutated through it.
type Invoice struct {
	ID            string        `json:"id" gorm:"column:id;primaryKey"`
	ClientID      string        `json:"client_id" gorm:"column:client_id;index"`
	InvoiceNumber string        `json:"invoice_number" gorm:"column:invoice_number"`
	Amount        float64       `json:"amount" gorm:"column:amount"`
	Status        InvoiceStatus `json:"status" gorm:"column:status"`
	IssuedDate    time.Time     `json:"issued_date" gorm:"column:issued_date"`
	DueDate       time.Time     `json:"due_date" gorm:"column:due_date"`
	PDFURL        string        `json:"pdf_url,omitempty" gorm:"column:pdf_url"`
	CreatedAt     time.Time     `json:"created_at" gorm:"column:created_at"`
}

func (Invoice) TableName() string { return "invoices" }
