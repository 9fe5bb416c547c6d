package dto

// RegisterRequest creates a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Amine Benali"`
	Email    string `json:"email" binding:"required" example:"amine@example.com"`
	Password string `json:"password" binding:"required" example:"s3cure-pass"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"amine@example.com"`
	Password string `json:"password" binding:"required" example:"s3cure-pass"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Message string       `json:"message" example:"Account created successfully"`
	User    UserResponse `json:"user"`
}

// TokenResponse is returned on successful login. ExpiresIn is the token
// lifetime in seconds.
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"2592000"`
	User      UserResponse `json:"user"`
}
