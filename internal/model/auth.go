package model

// LoginRequest is the shared login body; Role selects which principal
// collection the credential is looked up in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin student"`
}

// UserInfo is the principal block returned after login.
type UserInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	StudentID string `json:"studentId,omitempty"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}
