package services

import (
	"context"
	"sort"

	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/app/repositories"
	"github.com/oguzdem/gradekeeper/internal/pkg/apperrors"
	"github.com/oguzdem/gradekeeper/internal/pkg/validation"
)

// SubjectService handles subject-related operations.
type SubjectService struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo}
}

// CreateSubject validates the draft, enforces code uniqueness and stores
// the record.
func (s *SubjectService) CreateSubject(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	if err := validation.ValidateSubject(subject); err != nil {
		return nil, err
	}

	stored, ok := s.subjectRepo.AddUnique(subject)
	if !ok {
		return nil, apperrors.ErrSubjectCodeAlreadyExists
	}
	return stored, nil
}

// GetSubjectByID retrieves a subject by its system identifier.
func (s *SubjectService) GetSubjectByID(ctx context.Context, id string) (*models.Subject, error) {
	subject, ok := s.subjectRepo.GetByID(id)
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

// SearchSubjects returns subjects matching the free-text term over the code
// and name fields, sorted ascending by code.
func (s *SubjectService) SearchSubjects(ctx context.Context, term string) ([]*models.Subject, error) {
	var out []*models.Subject
	for _, subject := range s.subjectRepo.List() {
		if matchesTerm(term, subject.Code, subject.Name) {
			out = append(out, subject)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// UpdateSubject validates the full replacement record and swaps it in under
// the given id. Grades referencing the subject's old code are left
// untouched; the reference is by value.
func (s *SubjectService) UpdateSubject(ctx context.Context, id string, subject *models.Subject) (*models.Subject, error) {
	if err := validation.ValidateSubject(subject); err != nil {
		return nil, err
	}

	updated, conflicted := s.subjectRepo.UpdateUnique(id, subject)
	if conflicted {
		return nil, apperrors.ErrSubjectCodeAlreadyExists
	}
	if !updated {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

// DeleteSubject removes a subject. Grades recorded against its code remain.
func (s *SubjectService) DeleteSubject(ctx context.Context, id string) error {
	if _, ok := s.subjectRepo.GetByID(id); !ok {
		return apperrors.ErrSubjectNotFound
	}
	s.subjectRepo.Remove(id)
	return nil
}
