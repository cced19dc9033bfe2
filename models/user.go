package models

import (
	"strings"
	"time"
)

// UserRole represents the authority granted to an account
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// IsValid reports whether r is one of the known roles
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account record. The password hash never leaves the server.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Phone        string    `json:"phone" db:"phone"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	Role         UserRole  `json:"role" db:"role"`
	Enabled      bool      `json:"enabled" db:"enabled"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// UserProfile is the public view of an account returned to clients
type UserProfile struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	LastName string   `json:"lastName"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Enabled  bool     `json:"enabled"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// NewUser creates an enabled account with the default role
func NewUser(name, lastName, phone, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Name:         strings.TrimSpace(name),
		LastName:     strings.TrimSpace(lastName),
		Phone:        NormalizePhone(phone),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone trims surrounding whitespace from a phone number
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile returns the public view of the account
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Phone:    u.Phone,
		Email:    u.Email,
		Role:     u.Role,
		Enabled:  u.Enabled,
	}
}

// Subject is the identifier tokens are issued for.
func (u *User) Subject() string {
	return u.Email
}

// HashedPassword returns the stored credential hash.
func (u *User) HashedPassword() string {
	return u.PasswordHash
}

// Authorities returns the roles held by the account.
func (u *User) Authorities() []string {
	return []string{string(u.Role)}
}

// IsEnabled reports whether the account may sign in.
func (u *User) IsEnabled() bool {
	return u.Enabled
}
