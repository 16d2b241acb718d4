package reports

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/osunpoly/polyreg/internal/app/models"
)

// SlipCourse is one registered course line on the slip.
type SlipCourse struct {
	CourseCode  string
	CourseTitle string
	Units       int
}

// Slip is the data for one session/semester registration slip.
type Slip struct {
	StudentName      string
	MatricNumber     string
	Department       string
	Level            models.Level
	Session          string
	Semester         models.Semester
	Courses          []SlipCourse
	TotalUnits       int
	RegistrationDate time.Time
}

var slipTemplate = template.Must(template.New("slip").Funcs(template.FuncMap{
	"date": func(t time.Time) string { return t.Format(exportDateLayout) },
}).Parse(`COURSE REGISTRATION SLIP
========================

Student Information:
- Name: {{.StudentName}}
- Matric Number: {{.MatricNumber}}
- Department: {{.Department}}
- Level: {{.Level}}

Academic Details:
- Session: {{.Session}}
- Semester: {{.Semester}}

Registered Courses:
{{range .Courses}}- {{.CourseCode}}: {{.CourseTitle}} ({{.Units}} units)
{{end}}
Total Units: {{.TotalUnits}}

Registration Date: {{date .RegistrationDate}}
`))

// Render produces the plain-text registration slip.
func (s Slip) Render() (string, error) {
	var buf bytes.Buffer
	if err := slipTemplate.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("failed to render registration slip: %w", err)
	}
	return buf.String(), nil
}

// Filename returns the download name for the slip. Slashes in the matric
// number and session are replaced so the name is filesystem safe.
func (s Slip) Filename() string {
	matric := strings.ReplaceAll(s.MatricNumber, "/", "-")
	session := strings.ReplaceAll(s.Session, "/", "-")
	return fmt.Sprintf("registration-%s-%s-%s.txt", matric, session, s.Semester)
}
