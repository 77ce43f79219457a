// Package results holds the exam results dataset and its file formats.
package results

import "github.com/dtroode/studentportal-server/internal/model"

// Builtin returns the dataset served when no fixture file is configured.
func Builtin() []model.ResultRecord {
	return []model.ResultRecord{
		{
			RollNo:      "2024-001",
			StudentName: "Ali Ahmed",
			Class:       "10th Grade",
			FatherName:  "Ahmed Khan",
			Email:       "ali@example.com",
			Subjects: []model.SubjectEntry{
				{Name: "Mathematics", Total: 100, Obtained: 85, Percentage: 85, Grade: "A", Remarks: "Excellent"},
				{Name: "Physics", Total: 100, Obtained: 78, Percentage: 78, Grade: "B", Remarks: "Very Good"},
				{Name: "Chemistry", Total: 100, Obtained: 82, Percentage: 82, Grade: "A", Remarks: "Excellent"},
				{Name: "English", Total: 100, Obtained: 75, Percentage: 75, Grade: "B", Remarks: "Good"},
				{Name: "Urdu", Total: 100, Obtained: 88, Percentage: 88, Grade: "A", Remarks: "Excellent"},
			},
		},
		{
			RollNo:      "2024-002",
			StudentName: "Sara Khan",
			Class:       "10th Grade",
			FatherName:  "Imran Khan",
			Email:       "sara@example.com",
			Subjects: []model.SubjectEntry{
				{Name: "Mathematics", Total: 100, Obtained: 92, Percentage: 92, Grade: "A", Remarks: "Outstanding"},
				{Name: "Physics", Total: 100, Obtained: 88, Percentage: 88, Grade: "A", Remarks: "Excellent"},
				{Name: "Chemistry", Total: 100, Obtained: 90, Percentage: 90, Grade: "A", Remarks: "Excellent"},
				{Name: "English", Total: 100, Obtained: 85, Percentage: 85, Grade: "A", Remarks: "Excellent"},
				{Name: "Urdu", Total: 100, Obtained: 94, Percentage: 94, Grade: "A", Remarks: "Outstanding"},
			},
		},
		{
			RollNo:      "2024-003",
			StudentName: "Hassan Ali",
			Class:       "9th Grade",
			FatherName:  "Ali Raza",
			Email:       "hassan@example.com",
			Subjects: []model.SubjectEntry{
				{Name: "Mathematics", Total: 100, Obtained: 65, Percentage: 65, Grade: "C", Remarks: "Satisfactory"},
				{Name: "Physics", Total: 100, Obtained: 70, Percentage: 70, Grade: "B", Remarks: "Good"},
				{Name: "Chemistry", Total: 100, Obtained: 68, Percentage: 68, Grade: "C", Remarks: "Satisfactory"},
				{Name: "English", Total: 100, Obtained: 72, Percentage: 72, Grade: "B", Remarks: "Good"},
				{Name: "Urdu", Total: 100, Obtained: 75, Percentage: 75, Grade: "B", Remarks: "Good"},
			},
		},
	}
}
