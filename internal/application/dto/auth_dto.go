package dto

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	User     string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse token JWT do operador.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
