// Package rules implements the course selection rules a student's
// registration must satisfy before it may be submitted: unit totals bounded
// to [MinUnits, MaxUnits], no duplicate courses, and fees paid. All
// functions are pure and operate on in-memory catalog slices; callers fetch
// the catalog first and persist afterwards.
package rules

import (
	"github.com/osunpoly/polyreg/internal/app/models"
)

// Unit bounds for a single session/semester registration.
const (
	MinUnits = 12
	MaxUnits = 24
)

// Selection is a running set of courses a student intends to register.
// Membership is keyed on course ID; a course is atomic and cannot be
// partially selected.
type Selection struct {
	courses []models.Course
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Courses returns the selected courses in the order they were added.
func (s *Selection) Courses() []models.Course {
	return s.courses
}

// Len returns the number of selected courses.
func (s *Selection) Len() int {
	return len(s.courses)
}

// Contains reports whether the course with the given ID is selected.
func (s *Selection) Contains(courseID int64) bool {
	for _, c := range s.courses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

// Add appends candidate to the selection. It is a no-op when the candidate
// is already selected or when adding it would push the unit total past
// maxUnits. Returns true when the course was added.
func (s *Selection) Add(candidate models.Course, maxUnits int) bool {
	if s.Contains(candidate.ID) {
		return false
	}
	if s.TotalUnits()+candidate.Units > maxUnits {
		return false
	}
	s.courses = append(s.courses, candidate)
	return true
}

// Remove drops the course with the given ID from the selection. It is a
// no-op when the course is absent.
func (s *Selection) Remove(courseID int64) {
	for i, c := range s.courses {
		if c.ID == courseID {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return
		}
	}
}

// TotalUnits returns the unit sum of the selected courses.
func (s *Selection) TotalUnits() int {
	total := 0
	for _, c := range s.courses {
		total += c.Units
	}
	return total
}

// CanSubmit reports whether the selection is eligible for submission:
// fees paid and minUnits <= total <= maxUnits. An empty selection is never
// submittable.
func (s *Selection) CanSubmit(feesPaid bool, minUnits, maxUnits int) bool {
	total := s.TotalUnits()
	return feesPaid && total >= minUnits && total <= maxUnits
}

// FilterCatalog returns the catalog entries matching the student's
// department, level, semester and session. Department, level and semester
// must match exactly; a course without a session is treated as offered in
// every session.
func FilterCatalog(catalog []models.Course, department string, level models.Level, semester models.Semester, session string) []models.Course {
	var matched []models.Course
	for _, c := range catalog {
		if c.Department != department || c.Level != level || c.Semester != semester {
			continue
		}
		if !c.SessionMatches(session) {
			continue
		}
		matched = append(matched, c)
	}
	return matched
}
