package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// Level represents an academic stage
type Level string

// Level constants
const (
	LevelND1  Level = "ND1"
	LevelND2  Level = "ND2"
	LevelHND1 Level = "HND1"
	LevelHND2 Level = "HND2"
)

// Semester represents a half of an academic session
type Semester string

// Semester constants
const (
	SemesterFirst  Semester = "First"
	SemesterSecond Semester = "Second"
)

// RegistrationStatus represents the lifecycle state of a course registration
type RegistrationStatus string

const (
	RegistrationActive    RegistrationStatus = "active"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// ValidLevel reports whether s is one of the known academic levels.
func ValidLevel(s string) bool {
	switch Level(s) {
	case LevelND1, LevelND2, LevelHND1, LevelHND2:
		return true
	}
	return false
}

// NormalizeSemester maps the lowercase form posted by older clients
// ("first"/"second") onto the canonical stored value.
func NormalizeSemester(s string) (Semester, bool) {
	switch s {
	case "First", "first":
		return SemesterFirst, true
	case "Second", "second":
		return SemesterSecond, true
	}
	return "", false
}
