package models

// Grade defines a grade record in the gradeRecords collection.
//
// StudentName and SubjectCode are by-value snapshots of the referenced
// student and subject, not foreign keys: renaming or deleting a student or
// subject leaves existing grades untouched.
type Grade struct {
	ID          string  `json:"id" example:"f3b2a1c0-4d5e-6f70-8192-a3b4c5d6e7f8"` // System-generated identifier
	StudentName string  `json:"studentName" example:"Ayse Demir"`
	SubjectCode string  `json:"subjectCode" example:"IT 101"`
	Score       float64 `json:"score" example:"92.5"`       // 0-100 inclusive
	Date        string  `json:"date" example:"2025-01-20"`  // Defaults to creation date
}

func (g *Grade) RecordID() string      { return g.ID }
func (g *Grade) SetRecordID(id string) { g.ID = id }
