package admin

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required" validate:"required,min=2"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Company string `json:"company" binding:"required" validate:"required,min=2"`
	Phone   string `json:"phone" validate:"omitempty,min=6"`
}

type UpdateCustomerRequest struct {
	Company       string `json:"company" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}
