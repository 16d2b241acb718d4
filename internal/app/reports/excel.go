package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RegistrationDetailsWorkbook renders the joined registration rows as an
// .xlsx workbook with one sheet, a bold header row and frozen top pane.
func RegistrationDetailsWorkbook(details []RegistrationDetail) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Registrations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := []interface{}{
		"Student Name", "Matric Number", "Course Code", "Course Title",
		"Department", "Level", "Units", "Registration Date",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "H1", boldStyle)
	}
	_ = f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	for i, d := range details {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			d.StudentName,
			d.MatricNumber,
			d.CourseCode,
			d.CourseTitle,
			d.Department,
			d.Level,
			d.Units,
			d.RegistrationDate.Format(exportDateLayout),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf, nil
}
