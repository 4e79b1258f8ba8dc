package services

import (
	"context"
	"sort"

	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/app/repositories"
	"github.com/oguzdem/gradekeeper/internal/pkg/apperrors"
	"github.com/oguzdem/gradekeeper/internal/pkg/validation"
)

// StudentService handles student-related operations.
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudent validates the draft, enforces studentId uniqueness and
// stores the record. The stored record, with its assigned id, is returned.
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validation.ValidateStudent(student); err != nil {
		return nil, err
	}

	stored, ok := s.studentRepo.AddUnique(student)
	if !ok {
		return nil, apperrors.ErrStudentIDAlreadyExists
	}
	return stored, nil
}

// GetStudentByID retrieves a student by its system identifier.
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := s.studentRepo.GetByID(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// SearchStudents returns students matching the free-text term over the
// studentId, name, email and major fields, optionally narrowed to a status
// and a major, sorted ascending by studentId.
func (s *StudentService) SearchStudents(ctx context.Context, term, status, major string) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range s.studentRepo.List() {
		if !matchesTerm(term, student.StudentID, student.FirstName, student.LastName, student.Email, student.Major) {
			continue
		}
		if status != "" && string(student.Status) != status {
			continue
		}
		if major != "" && student.Major != major {
			continue
		}
		out = append(out, student)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StudentID < out[j].StudentID
	})
	return out, nil
}

// UpdateStudent validates the full replacement record and swaps it in under
// the given id, keeping the record's position in the collection. Grades
// referencing the student's old name are left untouched; the reference is
// by value.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, student *models.Student) (*models.Student, error) {
	if err := validation.ValidateStudent(student); err != nil {
		return nil, err
	}

	updated, conflicted := s.studentRepo.UpdateUnique(id, student)
	if conflicted {
		return nil, apperrors.ErrStudentIDAlreadyExists
	}
	if !updated {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// DeleteStudent removes a student. Grades referencing the student are kept;
// they dangle by content, not by pointer.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if _, ok := s.studentRepo.GetByID(id); !ok {
		return apperrors.ErrStudentNotFound
	}
	s.studentRepo.Remove(id)
	return nil
}
