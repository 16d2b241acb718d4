// Package reports produces read-only summaries from the student, course and
// registration collections. Everything here is purely functional: inputs
// are never mutated and no storage is touched, so callers fetch the flat
// record lists once and aggregate in memory.
package reports

import (
	"math"
	"sort"
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
)

// KeyCount is one bucket of a grouped count. Buckets keep the order in
// which their key was first seen while iterating the records.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupCount counts records per key, iterating records exactly once.
func GroupCount[T any](records []T, key func(T) string) []KeyCount {
	index := make(map[string]int)
	var buckets []KeyCount
	for _, r := range records {
		k := key(r)
		if i, ok := index[k]; ok {
			buckets[i].Count++
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, KeyCount{Key: k, Count: 1})
	}
	return buckets
}

// FeesSplit returns how many students have and have not paid fees.
func FeesSplit(students []models.StudentProfile) (paid, unpaid int) {
	for _, s := range students {
		if s.FeesPaid {
			paid++
		} else {
			unpaid++
		}
	}
	return paid, unpaid
}

// RegistrationRate returns the percentage of students with an active
// registration, rounded to the nearest integer. Zero students yields zero
// rather than a division by zero.
func RegistrationRate(activeRegistrations, totalStudents int) int {
	if totalStudents == 0 {
		return 0
	}
	return int(math.Round(100 * float64(activeRegistrations) / float64(totalStudents)))
}

// RegistrationDetail is one joined row of the registration details report.
type RegistrationDetail struct {
	StudentName      string    `json:"studentName"`
	MatricNumber     string    `json:"matricNumber"`
	CourseCode       string    `json:"courseCode"`
	CourseTitle      string    `json:"courseTitle"`
	Department       string    `json:"department"`
	Level            string    `json:"level"`
	Units            int       `json:"units"`
	Semester         string    `json:"semester"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// JoinRegistrationDetails joins each registration to its student (by user
// ID) and course (by course ID). Registrations whose student or course no
// longer exists are dropped silently; the detail view never reports them as
// errors.
func JoinRegistrationDetails(registrations []models.CourseRegistration, students []models.StudentProfile, courses []models.Course) []RegistrationDetail {
	studentsByUser := make(map[int64]*models.StudentProfile, len(students))
	for i := range students {
		studentsByUser[students[i].UserID] = &students[i]
	}
	coursesByID := make(map[int64]*models.Course, len(courses))
	for i := range courses {
		coursesByID[courses[i].ID] = &courses[i]
	}

	var details []RegistrationDetail
	for _, reg := range registrations {
		student, ok := studentsByUser[reg.UserID]
		if !ok {
			continue
		}
		course, ok := coursesByID[reg.CourseID]
		if !ok {
			continue
		}
		details = append(details, RegistrationDetail{
			StudentName:      student.FullName,
			MatricNumber:     student.MatricNumber,
			CourseCode:       course.CourseCode,
			CourseTitle:      course.CourseTitle,
			Department:       course.Department,
			Level:            string(course.Level),
			Units:            course.Units,
			Semester:         string(reg.Semester),
			RegistrationDate: reg.RegistrationDate,
		})
	}
	return details
}

// Dashboard holds the admin dashboard aggregates.
type Dashboard struct {
	TotalStudents          int        `json:"totalStudents"`
	TotalCourses           int        `json:"totalCourses"`
	RegistrationRate       int        `json:"registrationRate"`
	ActiveRegistrations    int        `json:"activeRegistrations"`
	FeesPaid               int        `json:"feesPaid"`
	FeesUnpaid             int        `json:"feesUnpaid"`
	DepartmentDistribution []KeyCount `json:"departmentDistribution"`
	LastUpdated            time.Time  `json:"lastUpdated"`
}

// BuildDashboard assembles the dashboard aggregates from the flat record
// lists. The department distribution is sorted by student count, largest
// first.
func BuildDashboard(students []models.StudentProfile, courses []models.Course, registrations []models.CourseRegistration, now time.Time) Dashboard {
	active := 0
	for _, r := range registrations {
		if r.Status == models.RegistrationActive {
			active++
		}
	}

	paid, unpaid := FeesSplit(students)

	distribution := GroupCount(students, func(s models.StudentProfile) string {
		if s.Department == "" {
			return "Unknown"
		}
		return s.Department
	})
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})

	return Dashboard{
		TotalStudents:          len(students),
		TotalCourses:           len(courses),
		RegistrationRate:       RegistrationRate(active, len(students)),
		ActiveRegistrations:    active,
		FeesPaid:               paid,
		FeesUnpaid:             unpaid,
		DepartmentDistribution: distribution,
		LastUpdated:            now,
	}
}

// StudentBreakdown summarizes the student population.
type StudentBreakdown struct {
	Total        int        `json:"total"`
	ByDepartment []KeyCount `json:"byDepartment"`
	ByLevel      []KeyCount `json:"byLevel"`
	FeesPaid     int        `json:"feesPaid"`
	FeesUnpaid   int        `json:"feesUnpaid"`
}

// CourseBreakdown summarizes the course catalog.
type CourseBreakdown struct {
	Total        int        `json:"total"`
	ByDepartment []KeyCount `json:"byDepartment"`
	ByLevel      []KeyCount `json:"byLevel"`
}

// RegistrationBreakdown summarizes the registration rows. Level and
// semester buckets count only registrations whose student and course both
// still exist, matching the joined detail view.
type RegistrationBreakdown struct {
	Total      int        `json:"total"`
	ByLevel    []KeyCount `json:"byLevel"`
	BySemester []KeyCount `json:"bySemester"`
}

// Overview is the full aggregate report.
type Overview struct {
	Students      StudentBreakdown      `json:"students"`
	Courses       CourseBreakdown       `json:"courses"`
	Registrations RegistrationBreakdown `json:"registrations"`
}

// BuildOverview assembles the overview report from the flat record lists.
func BuildOverview(students []models.StudentProfile, courses []models.Course, registrations []models.CourseRegistration) Overview {
	paid, unpaid := FeesSplit(students)

	details := JoinRegistrationDetails(registrations, students, courses)

	return Overview{
		Students: StudentBreakdown{
			Total:        len(students),
			ByDepartment: GroupCount(students, func(s models.StudentProfile) string { return s.Department }),
			ByLevel:      GroupCount(students, func(s models.StudentProfile) string { return string(s.Level) }),
			FeesPaid:     paid,
			FeesUnpaid:   unpaid,
		},
		Courses: CourseBreakdown{
			Total:        len(courses),
			ByDepartment: GroupCount(courses, func(c models.Course) string { return c.Department }),
			ByLevel:      GroupCount(courses, func(c models.Course) string { return string(c.Level) }),
		},
		Registrations: RegistrationBreakdown{
			Total:      len(registrations),
			ByLevel:    GroupCount(details, func(d RegistrationDetail) string { return d.Level }),
			BySemester: GroupCount(details, func(d RegistrationDetail) string { return d.Semester }),
		},
	}
}
