package models

import (
	"time"
)

// User represents a user record in the database
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PhoneNumber  string    `db:"phone_number"`
	IsActive     bool      `db:"is_active"`
	Version      int64     `db:"version"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ToResponse maps the record to its public form, leaving the password hash out.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UserResponse is the public representation of a user
// swagger:model UserResponse
type UserResponse struct {
	// example: 1
	ID int64 `json:"id"`
	// example: alice
	Username string `json:"username"`
	// example: alice@example.com
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: alice
	Username string `json:"username" validate:"required,username"`
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`
	// required: true
	// example: Password123!
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"firstName" validate:"omitempty,max=50"`
	LastName    string `json:"lastName" validate:"omitempty,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone"`
}

// UpdateUserRequest carries the mutable profile fields. Empty fields are left unchanged.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	FirstName   string `json:"firstName" validate:"omitempty,max=50"`
	LastName    string `json:"lastName" validate:"omitempty,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: alice
	Username string `json:"username" validate:"required"`
	// required: true
	// example: Password123!
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	// example: Bearer
	TokenType string `json:"tokenType"`
	// Lifetime in seconds
	// example: 86400
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
}

// TokenValidationResponse is the answer of /auth/validate
// swagger:model TokenValidationResponse
type TokenValidationResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username,omitempty"`
}

// ExistsResponse is the answer of the existence checks
// swagger:model ExistsResponse
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
