package models

// Student defines a student record in the studentRecords collection.
type Student struct {
	ID             string        `json:"id" example:"7ed99bd0-87b2-4dbb-a97b-596c3f29c49b"` // System-generated identifier, immutable
	StudentID      string        `json:"studentId" example:"STU-2024-001"`                  // User-supplied business code
	FirstName      string        `json:"firstName" example:"Ayse"`
	LastName       string        `json:"lastName" example:"Demir"`
	Email          string        `json:"email" example:"ayse.demir@example.edu"`
	Phone          string        `json:"phone,omitempty" example:"+90 532 000 0000"` // Optional
	EnrollmentDate string        `json:"enrollmentDate" example:"2024-09-16"`
	Major          string        `json:"major" example:"Computer Science"`
	Status         StudentStatus `json:"status" example:"active"`
}

// FullName returns the display name used by grade records as a by-value
// reference. Existing grades keep the name they were created with.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s *Student) RecordID() string      { return s.ID }
func (s *Student) SetRecordID(id string) { s.ID = id }
