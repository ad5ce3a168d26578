package model

import "time"

// AccountEntity represents the app_user table entity
type AccountEntity struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	PhoneNumber  *string    `db:"phone_number" json:"phone_number,omitempty"`
	Image        *string    `db:"image" json:"image,omitempty"`
	DateOfBirth  *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// AccountFilter for querying accounts
type AccountFilter struct {
	ID    string
	Email string
}

// AccountPatch carries the fields of a partial profile update.
// A nil field means "leave unchanged", never "set to null".
type AccountPatch struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Image       *string
	DateOfBirth *time.Time
}

// RegisterRequest for account registration
type RegisterRequest struct {
	FirstName      string     `json:"first_name" validate:"required"`
	LastName       string     `json:"last_name" validate:"required"`
	PhoneNumber    string     `json:"phone_number"`
	Email          string     `json:"email" validate:"required,email"`
	Password       string     `json:"password" validate:"required,min=6"`
	ProfilePicture string     `json:"profile_picture"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
}

// UpdateAccountRequest for partial profile updates.
// Image carries a raw picture payload (data URI), not a URL.
type UpdateAccountRequest struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	PhoneNumber *string    `json:"phone_number"`
	Image       *string    `json:"image"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// LoginRequest for account sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Token     string `json:"token"`
}

// AccountResponse is the public view of an account, never the hash.
type AccountResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber *string    `json:"phone_number"`
	Image       *string    `json:"image"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}
