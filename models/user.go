package models

import "time"

// User represents an account in the user store
// @Description User account information
type User struct {
	ID        string    `json:"id" firestore:"-" example:"1"`
	Username  string    `json:"username" firestore:"username" example:"jdoe"`
	Email     string    `json:"email" firestore:"email" example:"user@example.com"`
	Password  string    `json:"-" firestore:"password"` // Hashed password, never sent to client
	IsActive  bool      `json:"is_active" firestore:"isActive" example:"true"`
	IsAdmin   bool      `json:"is_admin" firestore:"isAdmin" example:"false"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// SignupRequest represents registration request
// @Description User registration request
type SignupRequest struct {
	Username        string `json:"username" form:"username" binding:"required,min=2,max=10" example:"jdoe"`
	Email           string `json:"email" form:"email" binding:"required,email" example:"user@example.com"`
	Password        string `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required,eqfield=Password" example:"password123"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// SignupResponse represents a successful registration
// @Description Registration response
type SignupResponse struct {
	Message string `json:"message" example:"User has successfully created"`
	Login   string `json:"login" example:"http://localhost:8080/api/auth/login"`
}

// LoginResponse represents authentication response
// @Description Authenticated user with access token
type LoginResponse struct {
	*User
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenResponse carries a freshly issued access token
// @Description Access token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
