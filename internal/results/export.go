package results

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dtroode/studentportal-server/internal/model"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Results"

var exportHeader = []interface{}{
	"Roll No", "Student Name", "Class", "Father Name",
	"Subject", "Total", "Obtained", "Percentage", "Grade", "Remarks",
}

// WriteXLSX writes one row per subject of every record.
func WriteXLSX(w io.Writer, records []model.ResultRecord) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := file.SetSheetRow(SheetName, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, rec := range records {
		for _, sub := range rec.Subjects {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("failed to address row %d: %w", row, err)
			}
			values := []interface{}{
				rec.RollNo, rec.StudentName, rec.Class, rec.FatherName,
				sub.Name, sub.Total, sub.Obtained, sub.Percentage, sub.Grade, sub.Remarks,
			}
			if err := file.SetSheetRow(SheetName, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
			row++
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
