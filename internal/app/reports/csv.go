package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"
)

// Date layout used in exported reports, matching the locale-style dates the
// previous exporter produced.
const exportDateLayout = "1/2/2006"

// OverviewCSV serializes the overview report: a small preamble, the summary
// counters, then the students-by-department block. Fields are quoted only
// when they need it.
func OverviewCSV(overview Overview, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Report Type", "Overview"},
		{"Generated", generatedAt.Format(time.RFC3339)},
		{},
		{"Summary"},
		{"Total Students", strconv.Itoa(overview.Students.Total)},
		{"Total Courses", strconv.Itoa(overview.Courses.Total)},
		{"Total Registrations", strconv.Itoa(overview.Registrations.Total)},
		{"Fees Paid", strconv.Itoa(overview.Students.FeesPaid)},
		{"Fees Unpaid", strconv.Itoa(overview.Students.FeesUnpaid)},
		{},
		{"Students by Department"},
	}
	for _, bucket := range overview.Students.ByDepartment {
		rows = append(rows, []string{bucket.Key, strconv.Itoa(bucket.Count)})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RegistrationDetailsCSV serializes the joined registration rows with a
// header row, one data row per registration.
func RegistrationDetailsCSV(details []RegistrationDetail) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{
		"Student Name", "Matric Number", "Course Code", "Course Title",
		"Department", "Level", "Units", "Registration Date",
	}}
	for _, d := range details {
		rows = append(rows, []string{
			d.StudentName,
			d.MatricNumber,
			d.CourseCode,
			d.CourseTitle,
			d.Department,
			d.Level,
			strconv.Itoa(d.Units),
			d.RegistrationDate.Format(exportDateLayout),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
