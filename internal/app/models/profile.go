package models

import "time"

// StudentProfile defines the student record based on the 'profiles' table.
// Profiles are created on signup or by admin provisioning and are never
// hard-deleted.
type StudentProfile struct {
	ID                int64     `json:"id" db:"id" example:"1"`
	UserID            int64     `json:"userId" db:"user_id" example:"5"`                         // ID of the associated user account
	FullName          string    `json:"fullName" db:"full_name" example:"Adaeze Okafor"`         // Student's full name
	MatricNumber      string    `json:"matricNumber" db:"matric_number" example:"ND/CS/23/0041"` // Unique matric identifier
	Department        string    `json:"department" db:"department" example:"Computer Science"`
	Level             Level     `json:"level" db:"level" example:"ND1"`
	FeesPaid          bool      `json:"feesPaid" db:"fees_paid" example:"false"`             // Gate for course registration
	AdminCreated      bool      `json:"adminCreated" db:"admin_created" example:"false"`     // Provisioned by staff rather than self-signup
	TemporaryPassword *string   `json:"temporaryPassword,omitempty" db:"temporary_password"` // Set for admin-created accounts until first change
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"`
}
