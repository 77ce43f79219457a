package model

// SubjectEntry is one subject line of a result record.
type SubjectEntry struct {
	Name       string  `json:"name" yaml:"name"`
	Total      int     `json:"total" yaml:"total"`
	Obtained   int     `json:"obtained" yaml:"obtained"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Grade      string  `json:"grade" yaml:"grade"`
	Remarks    string  `json:"remarks" yaml:"remarks"`
}

// ResultRecord is a student's exam result, keyed by roll number.
type ResultRecord struct {
	RollNo      string         `json:"rollNo" yaml:"rollNo"`
	StudentName string         `json:"studentName" yaml:"studentName"`
	Class       string         `json:"class" yaml:"class"`
	FatherName  string         `json:"fatherName" yaml:"fatherName"`
	Email       string         `json:"email,omitempty" yaml:"email,omitempty"`
	Subjects    []SubjectEntry `json:"subjects" yaml:"subjects"`
}
