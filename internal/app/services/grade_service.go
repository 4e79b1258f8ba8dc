package services

import (
	"context"
	"sort"
	"time"

	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/app/repositories"
	"github.com/oguzdem/gradekeeper/internal/pkg/apperrors"
	"github.com/oguzdem/gradekeeper/internal/pkg/validation"
)

// GradeService handles grade-related operations.
type GradeService struct {
	gradeRepo *repositories.GradeRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo *repositories.GradeRepository) *GradeService {
	return &GradeService{gradeRepo: gradeRepo}
}

// CreateGrade validates the draft and stores the record. An empty date
// defaults to the creation date.
func (s *GradeService) CreateGrade(ctx context.Context, grade *models.Grade) (*models.Grade, error) {
	if err := validation.ValidateGrade(grade); err != nil {
		return nil, err
	}

	if grade.Date == "" {
		grade.Date = time.Now().Format(models.DateLayout)
	}

	return s.gradeRepo.Add(grade), nil
}

// GetGradeByID retrieves a grade by its system identifier.
func (s *GradeService) GetGradeByID(ctx context.Context, id string) (*models.Grade, error) {
	grade, ok := s.gradeRepo.GetByID(id)
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	return grade, nil
}

// SearchGrades returns grades matching the free-text term over the
// studentName and subjectCode fields, optionally narrowed to an exact
// subject code, sorted descending by score.
func (s *GradeService) SearchGrades(ctx context.Context, term, subjectCode string) ([]*models.Grade, error) {
	var out []*models.Grade
	for _, grade := range s.gradeRepo.List() {
		if !matchesTerm(term, grade.StudentName, grade.SubjectCode) {
			continue
		}
		if subjectCode != "" && grade.SubjectCode != subjectCode {
			continue
		}
		out = append(out, grade)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}

// UpdateGrade validates the full replacement record and swaps it in under
// the given id.
func (s *GradeService) UpdateGrade(ctx context.Context, id string, grade *models.Grade) (*models.Grade, error) {
	if err := validation.ValidateGrade(grade); err != nil {
		return nil, err
	}

	if _, ok := s.gradeRepo.GetByID(id); !ok {
		return nil, apperrors.ErrGradeNotFound
	}

	if grade.Date == "" {
		grade.Date = time.Now().Format(models.DateLayout)
	}

	s.gradeRepo.Update(id, grade)
	return grade, nil
}

// DeleteGrade removes a grade record.
func (s *GradeService) DeleteGrade(ctx context.Context, id string) error {
	if _, ok := s.gradeRepo.GetByID(id); !ok {
		return apperrors.ErrGradeNotFound
	}
	s.gradeRepo.Remove(id)
	return nil
}
