package repositories

import (
	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
)

// GradeKey is the store key for the grade collection.
const GradeKey = "gradeRecords"

// GradeRepository owns the gradeRecords collection.
type GradeRepository struct {
	*collection[*models.Grade]
}

// NewGradeRepository loads the grade collection. Grades have no seeded
// defaults; an absent collection starts empty.
func NewGradeRepository(store storage.Store) *GradeRepository {
	return &GradeRepository{
		collection: newCollection[*models.Grade](store, GradeKey, nil),
	}
}

// ListBySubjectCode returns every grade recorded against the given subject
// code, in insertion order. The match is by value: grades keep the code
// they were created with even if the subject was since renamed or removed.
func (r *GradeRepository) ListBySubjectCode(code string) []*models.Grade {
	var out []*models.Grade
	for _, g := range r.List() {
		if g.SubjectCode == code {
			out = append(out, g)
		}
	}
	return out
}
