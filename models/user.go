package models

import "time"

// User roles.
const (
	RoleUser         = "user"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// User represents a platform account: a client, a professional or an admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Role         string    `bson:"role" json:"role"`
	IsVerified   bool      `bson:"is_verified" json:"isVerified"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	RefreshHash  string    `bson:"refresh_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistration is the payload for creating a client account.
type UserRegistration struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

// AuthResponse is returned on successful login, registration or token refresh.
type AuthResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
	IsVerified   bool   `json:"isVerified"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
