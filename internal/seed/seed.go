// Package seed provides the documented default collections used when a
// persisted collection is absent or unparsable. Students and subjects get
// sample data; grades always start empty.
package seed

import (
	"github.com/google/uuid"
	"github.com/oguzdem/gradekeeper/internal/app/models"
)

// DefaultSubjects returns the five seeded subject records. Identifiers are
// generated fresh per process start; they are only persisted once the first
// mutation writes the collection.
func DefaultSubjects() []*models.Subject {
	subjects := []*models.Subject{
		{Code: "IT 101", Name: "Introduction to Information Technology", Credits: 3},
		{Code: "CS 201", Name: "Data Structures and Algorithms", Credits: 4},
		{Code: "MATH 150", Name: "Discrete Mathematics", Credits: 3},
		{Code: "ENG 110", Name: "Academic Writing", Credits: 2},
		{Code: "BUS 120", Name: "Principles of Management", Credits: 3},
	}
	for _, s := range subjects {
		s.ID = uuid.New().String()
	}
	return subjects
}

// DefaultStudents returns the seeded sample student records.
func DefaultStudents() []*models.Student {
	students := []*models.Student{
		{
			StudentID:      "STU-2024-001",
			FirstName:      "Ayse",
			LastName:       "Demir",
			Email:          "ayse.demir@example.edu",
			Phone:          "+90 532 000 0001",
			EnrollmentDate: "2024-09-16",
			Major:          "Computer Science",
			Status:         models.StatusActive,
		},
		{
			StudentID:      "STU-2024-002",
			FirstName:      "Mehmet",
			LastName:       "Yilmaz",
			Email:          "mehmet.yilmaz@example.edu",
			EnrollmentDate: "2024-09-16",
			Major:          "Information Technology",
			Status:         models.StatusActive,
		},
		{
			StudentID:      "STU-2022-117",
			FirstName:      "Elif",
			LastName:       "Kaya",
			Email:          "elif.kaya@example.edu",
			EnrollmentDate: "2022-09-12",
			Major:          "Business Administration",
			Status:         models.StatusGraduated,
		},
	}
	for _, s := range students {
		s.ID = uuid.New().String()
	}
	return students
}
