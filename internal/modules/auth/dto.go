package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// RedirectTo is the path the user originally requested before being
	// sent to the login screen; it is echoed back untouched.
	RedirectTo string `json:"redirect_to"`
}

type UserPublic struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
