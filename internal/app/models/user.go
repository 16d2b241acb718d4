package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	MatricNumber string     `json:"matricNumber" db:"matric_number" example:"ND/CS/23/0041"` // Login identifier issued at enrollment
	Password     string     `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	RoleType     RoleType   `json:"roleType" db:"role_type" example:"STUDENT"`               // User's role (STUDENT or ADMIN)
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`                  // Whether the account is active
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`                               // Timestamp when the user was created
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`                               // Timestamp when the user was last updated
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                // Timestamp of the last login (nullable)

	// Relations (populated when needed)
	Profile *StudentProfile `json:"profile,omitempty"`
}
