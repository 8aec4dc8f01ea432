package domain

import "time"

type UserRole string

const (
	// RoleAdmin can manage blog posts, customers and inquiries.
	RoleAdmin UserRole = "admin"
	// RolePortal is a customer login provisioned by an admin.
	RolePortal UserRole = "portal"
)

type User struct {
	ID           string    `json:"id" gorm:"column:id;primaryKey"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         UserRole  `json:"role" gorm:"column:role"`
	Name         string    `json:"name" gorm:"column:name"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
