package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	SecurityCode string `json:"securityCode"`
}

// RegisterResponse confirmación de registro.
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión y usuario autenticado.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
