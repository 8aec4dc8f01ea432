package content

type SubmitInquiryRequest struct {
	Name    string `json:"name" binding:"required" validate:"required,min=2"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=6"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" binding:"required" validate:"required,min=10"`
}
