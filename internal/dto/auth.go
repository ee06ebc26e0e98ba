package dto

// LoginRequest carries credentials for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the user block echoed on a successful login.
type UserInfo struct {
	Username string `json:"username"`
}

// LoginResponse preserves the original success/user shape and adds the bearer
// token that replaced header-smuggled identity.
type LoginResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
	Token   string   `json:"token"`
}

// RegisterRequest carries the fields for POST /api/register.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	SecurityCode string `json:"securityCode" binding:"required"`
}

// ChangePasswordRequest carries the fields for PUT /api/user/password.
type ChangePasswordRequest struct {
	Username        string `json:"username" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// DeleteAccountRequest carries the fields for DELETE /api/user.
type DeleteAccountRequest struct {
	Username     string `json:"username" binding:"required"`
	SecurityCode string `json:"securityCode" binding:"required"`
}

// MessageResponse is the generic {"message": ...} success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic {"error": ...} failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
