package dto

import "github.com/oguzdem/gradekeeper/internal/app/models"

// StudentRequest carries a student draft for create and update operations.
// The system identifier is never part of the payload; it is assigned by the
// repository on create and taken from the URL on update.
type StudentRequest struct {
	StudentID      string `json:"studentId" example:"STU-2024-001"`
	FirstName      string `json:"firstName" example:"Ayse"`
	LastName       string `json:"lastName" example:"Demir"`
	Email          string `json:"email" example:"ayse.demir@example.edu"`
	Phone          string `json:"phone" example:"+90 532 000 0000"`
	EnrollmentDate string `json:"enrollmentDate" example:"2024-09-16"`
	Major          string `json:"major" example:"Computer Science"`
	Status         string `json:"status" example:"active"`
}

// ToModel converts the request into a candidate record for validation.
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentID:      r.StudentID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		EnrollmentDate: r.EnrollmentDate,
		Major:          r.Major,
		Status:         models.StudentStatus(r.Status),
	}
}
