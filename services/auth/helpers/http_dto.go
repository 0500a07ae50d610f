package helpers

// Request DTOs. Field rules are enforced in the service layer so rejections
// carry the documented per-field messages, not binding errors.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
